package containers

import (
	"context"
	"log"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

type MongoContainer struct {
	container *mongodb.MongoDBContainer
}

func NewMongoContainer() *MongoContainer {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		log.Fatalf("error starting mongo container: %v", err)
	}

	return &MongoContainer{
		container: container,
	}
}

func (c *MongoContainer) Shutdown() {
	err := c.container.Terminate(context.Background())
	if err != nil {
		log.Fatalf("error terminating mongo container: %v", err)
	}
}

func (c *MongoContainer) ConnectionString() string {
	connStr, err := c.container.ConnectionString(context.Background())
	if err != nil {
		log.Fatalf("error getting mongo connection string: %v", err)
	}
	return connStr
}
