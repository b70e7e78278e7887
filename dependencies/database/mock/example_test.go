package mock_test

import (
	"context"
	"fmt"

	"github.com/ti/docstore/dependencies/database"
	_ "github.com/ti/docstore/dependencies/database/mock"
)

func ExampleMock() {
	ctx := context.Background()

	// Create mock database with URL: mock://host/database_name
	db, err := database.New(ctx, "mock://local/school")
	if err != nil {
		panic(err)
	}
	defer db.Close(ctx)

	activities := db.Collection("activities")
	_, err = activities.InsertOne(ctx, database.Document{
		"_id":              "Chess Club",
		"schedule_details": map[string]any{"days": []any{"Monday", "Friday"}},
		"participants":     []any{"michael@mergington.edu"},
	})
	if err != nil {
		panic(err)
	}

	doc, err := activities.FindOne(ctx, database.ByID("Chess Club"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Found activity: %s\n", doc["_id"])
	// Output: Found activity: Chess Club
}

func ExampleMock_signup() {
	ctx := context.Background()
	db, _ := database.New(ctx, "mock://local/school")
	defer db.Close(ctx)

	activities := db.Collection("activities")
	activities.InsertOne(ctx, database.Document{"_id": "Art Club", "participants": []any{}})

	// Sign up, then unregister
	signup := database.Update{{Field: "participants", Op: database.Push, Value: "amelia@mergington.edu"}}
	ret, _ := activities.UpdateOne(ctx, database.ByID("Art Club"), signup)
	fmt.Printf("modified: %d\n", ret.ModifiedCount)

	doc, _ := activities.FindOne(ctx, database.ByID("Art Club"))
	fmt.Println(doc["participants"])

	unregister := database.Update{{Field: "participants", Op: database.Pull, Value: "amelia@mergington.edu"}}
	activities.UpdateOne(ctx, database.ByID("Art Club"), unregister)

	doc, _ = activities.FindOne(ctx, database.ByID("Art Club"))
	fmt.Println(doc["participants"])
	// Output:
	// modified: 1
	// [amelia@mergington.edu]
	// []
}

func ExampleMock_days() {
	ctx := context.Background()
	db, _ := database.New(ctx, "mock://local/school")
	defer db.Close(ctx)

	activities := db.Collection("activities")
	activities.InsertOne(ctx, database.Document{"_id": "Chess Club",
		"schedule_details": map[string]any{"days": []any{"Monday", "Friday"}}})
	activities.InsertOne(ctx, database.Document{"_id": "Math Club",
		"schedule_details": map[string]any{"days": []any{"Tuesday"}}})

	// Activities on a given day
	onMonday, _ := activities.Find(ctx, database.Query{
		{Path: "schedule_details.days", Op: database.In, Value: []any{"Monday"}},
	})
	for _, doc := range onMonday {
		fmt.Println(doc["_id"])
	}

	// Every day any activity meets on
	days, _ := activities.Aggregate(ctx, database.DistinctDaysPipeline())
	for _, day := range days {
		fmt.Println(day["_id"])
	}
	// Output:
	// Chess Club
	// Friday
	// Monday
	// Tuesday
}
