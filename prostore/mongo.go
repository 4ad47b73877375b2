package prostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/itbasis/go-clock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func New(ctx context.Context, uri, database, collection string, clock clock.Clock) (Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	col := client.Database(database).Collection(collection)

	// Gamertags are the natural key for upserts from the stats feed.
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "gamertag", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gamertag index: %w", err)
	}

	return &mongoStore{col: col, clock: clock}, nil
}

type mongoStore struct {
	col   *mongo.Collection
	clock clock.Clock
}

// proDocument is the BSON shape of a pro player. It is separate from
// model.ProPlayer so that the wire format can use a real ObjectID.
type proDocument struct {
	ID       bson.ObjectID     `bson:"_id,omitempty"`
	Gamertag string            `bson:"gamertag"`
	Team     string            `bson:"team"`
	Region   string            `bson:"region,omitempty"`
	Country  string            `bson:"country,omitempty"`
	Stats    map[string]string `bson:"stats,omitempty"`
	Created  time.Time         `bson:"created,omitempty"`
	Updated  time.Time         `bson:"updated,omitempty"`
}

func (d *proDocument) toProPlayer() *model.ProPlayer {
	p := &model.ProPlayer{
		ID:       d.ID.Hex(),
		Gamertag: d.Gamertag,
		Team:     d.Team,
		Country:  d.Country,
		Stats:    d.Stats,
		Created:  d.Created,
		Updated:  d.Updated,
	}
	if d.Region != "" {
		p.Region = model.ParseRegion(d.Region)
	}
	return p
}

func documentFor(p *model.ProPlayer) *proDocument {
	d := &proDocument{
		Gamertag: p.Gamertag,
		Team:     p.Team,
		Country:  p.Country,
		Stats:    p.Stats,
	}
	if p.Region != nil {
		d.Region = p.Region.String()
	}
	return d
}

func (s *mongoStore) GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc proDocument
	err = s.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProNotFound
		}
		return nil, fmt.Errorf("error finding pro player %s: %w", id, err)
	}

	return doc.toProPlayer(), nil
}

func (s *mongoStore) GetProPlayerByGamertag(ctx context.Context, gamertag string) (*model.ProPlayer, error) {
	var doc proDocument
	err := s.col.FindOne(ctx, bson.D{{Key: "gamertag", Value: gamertag}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProNotFound
		}
		return nil, fmt.Errorf("error finding pro player %s: %w", gamertag, err)
	}

	return doc.toProPlayer(), nil
}

func (s *mongoStore) InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error) {
	doc := documentFor(p)
	doc.Created = s.clock.Now().UTC()

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrProExists
		}
		return "", fmt.Errorf("error inserting pro player (%s): %w", p.Gamertag, err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *mongoStore) UpsertProPlayer(ctx context.Context, p *model.ProPlayer) error {
	doc := documentFor(p)

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "team", Value: doc.Team},
			{Key: "region", Value: doc.Region},
			{Key: "country", Value: doc.Country},
			{Key: "stats", Value: doc.Stats},
			{Key: "updated", Value: s.clock.Now().UTC()},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created", Value: s.clock.Now().UTC()},
		}},
	}

	_, err := s.col.UpdateOne(ctx,
		bson.D{{Key: "gamertag", Value: doc.Gamertag}},
		update,
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting pro player (%s): %w", p.Gamertag, err)
	}
	return nil
}

func (s *mongoStore) ListProPlayers(ctx context.Context) ([]model.ProPlayer, error) {
	cursor, err := s.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "gamertag", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing pro players: %w", err)
	}

	var docs []proDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error reading pro players: %w", err)
	}

	results := make([]model.ProPlayer, 0, len(docs))
	for i := range docs {
		results = append(results, *docs[i].toProPlayer())
	}
	return results, nil
}
