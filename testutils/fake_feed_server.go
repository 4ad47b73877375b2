package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed feeddata
var feeddata embed.FS

type FakeFeedServer struct {
	s *httptest.Server
}

func NewFakeFeedServer() *FakeFeedServer {
	r := chi.NewRouter()
	r.Get("/export/latest.tsv", latestExportHandler)
	r.Get("/export/error.tsv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/export/garbage.tsv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("just one column\n"))
	})

	return &FakeFeedServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeFeedServer) Close() {
	f.s.Close()
}

func (f *FakeFeedServer) URL() string {
	return f.s.URL
}

// ExportURL is the address of the well-formed export.
func (f *FakeFeedServer) ExportURL() string {
	return fmt.Sprintf("%s/export/latest.tsv", f.s.URL)
}

func latestExportHandler(w http.ResponseWriter, r *http.Request) {
	b, err := feeddata.ReadFile("feeddata/pros.tsv")
	if err != nil {
		log.Printf("error reading feeddata/pros.tsv: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
