package statsfeed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/YassineAssim23/eFantasyREPO/model"
)

// ParseExport reads the provider's tab-separated export. The first line
// is the header row. The first two columns are always the player's
// gamertag and country. The remaining columns are keyed by their header
// into the Stats map, except for the Team and Region columns which map
// to their own fields.
func ParseExport(r io.Reader) ([]model.ProPlayer, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading stats export header: %w", err)
		}
		return nil, fmt.Errorf("stats export is empty")
	}

	headers := strings.Split(scanner.Text(), "\t")
	if len(headers) < 2 {
		return nil, fmt.Errorf("stats export header only has %d columns", len(headers))
	}

	results := make([]model.ProPlayer, 0, 64)
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != len(headers) {
			return nil, fmt.Errorf("line %d has %d columns, expected %d", lineNum, len(fields), len(headers))
		}

		p := model.ProPlayer{
			Gamertag: strings.TrimSpace(fields[0]),
			Country:  strings.TrimSpace(fields[1]),
			Stats:    make(map[string]string),
		}
		if p.Gamertag == "" {
			return nil, fmt.Errorf("line %d is missing a gamertag", lineNum)
		}

		for j := 2; j < len(headers); j++ {
			v := strings.TrimSpace(fields[j])
			switch strings.ToLower(headers[j]) {
			case "team":
				p.Team = v
			case "region", "league":
				p.Region = model.ParseRegion(v)
			default:
				p.Stats[headers[j]] = v
			}
		}

		results = append(results, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading stats export: %w", err)
	}

	return results, nil
}
