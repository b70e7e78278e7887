package database

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ScheduleDaysPath the nested array holding the weekdays an activity meets on.
const ScheduleDaysPath = "schedule_details.days"

// Pipeline the aggregation stages, in the driver's own shape.
type Pipeline []bson.D

// DistinctDaysPipeline unwinds the schedule days, groups them and sorts the
// groups, yielding one {"_id": day} document per distinct day.
func DistinctDaysPipeline() Pipeline {
	field := "$" + ScheduleDaysPath
	return Pipeline{
		{{Key: "$unwind", Value: field}},
		{{Key: "$group", Value: bson.D{{Key: IDField, Value: field}}}},
		{{Key: "$sort", Value: bson.D{{Key: IDField, Value: 1}}}},
	}
}

// UnwindPath returns the field path the first stage unwinds, without the
// leading "$". Both {$unwind: "$a.b"} and {$unwind: {path: "$a.b"}} are read.
func (p Pipeline) UnwindPath() (string, bool) {
	if len(p) == 0 || len(p[0]) == 0 || p[0][0].Key != "$unwind" {
		return "", false
	}
	var path any
	switch v := p[0][0].Value.(type) {
	case string:
		path = v
	case bson.D:
		path = v.Map()["path"]
	case bson.M:
		path = v["path"]
	}
	s, ok := path.(string)
	if !ok || len(s) < 2 || s[0] != '$' {
		return "", false
	}
	return s[1:], true
}
