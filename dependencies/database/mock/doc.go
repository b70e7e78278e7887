// Package mock provides an in-memory document database so the application
// can run without a database server.
//
// URL Format:
//
//	mock://host/database_name
//
// Basic Usage:
//
//	import (
//	    "github.com/ti/docstore/dependencies/database"
//	    _ "github.com/ti/docstore/dependencies/database/mock"
//	)
//
//	db, err := database.New(ctx, "mock://local/school")
//	if err != nil {
//	    panic(err)
//	}
//	defer db.Close(ctx)
//
//	activities := db.Collection("activities")
//	activities.InsertOne(ctx, database.Document{"_id": "Chess Club", "participants": []any{}})
//	activities.UpdateOne(ctx, database.ByID("Chess Club"),
//	    database.Update{{Field: "participants", Op: database.Push, Value: "emma@mergington.edu"}})
//
// Behavior:
//
//   - documents are keyed by _id, inserting an existing id replaces the document
//   - iteration follows first-insertion order
//   - queries support Eq, In, Gte and Lte on dotted paths
//   - updates support Push and Pull on top level sequences, by _id only
//   - Aggregate recognizes the distinct schedule days pipeline only
//   - not found and unsupported shapes yield empty results, never errors
//   - one sync.RWMutex per collection
package mock
