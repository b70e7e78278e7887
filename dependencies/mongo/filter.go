package mongo

import (
	"github.com/ti/docstore/dependencies/database"
	"go.mongodb.org/mongo-driver/bson"
)

// getCondition renders query as a filter document. Operators on the same
// path share one operator document, {"days": {"$gte": a, "$lte": b}}.
func getCondition(query database.Query) bson.D {
	cond := bson.D{}
	operators := make(map[string]int)
	for _, c := range query {
		if c.Op == database.Eq {
			cond = append(cond, bson.E{Key: c.Path, Value: c.Value})
			continue
		}
		op := bson.E{Key: c.Op.String(), Value: c.Value}
		if i, ok := operators[c.Path]; ok {
			cond[i].Value = append(cond[i].Value.(bson.D), op)
			continue
		}
		operators[c.Path] = len(cond)
		cond = append(cond, bson.E{Key: c.Path, Value: bson.D{op}})
	}
	return cond
}

// splitUpdate cuts update into batches where no field carries two operators,
// keeping the mutation order.
func splitUpdate(update database.Update) []database.Update {
	var batches []database.Update
	var batch database.Update
	ops := make(map[string]database.UpdateOperator)
	for _, m := range update {
		if op, ok := ops[m.Field]; ok && op != m.Op {
			batches = append(batches, batch)
			batch = nil
			ops = make(map[string]database.UpdateOperator)
		}
		ops[m.Field] = m.Op
		batch = append(batch, m)
	}
	if len(batch) > 0 {
		batches = append(batches, batch)
	}
	return batches
}

// getUpdate groups mutations by operator, {"$push": {...}, "$pull": {...}}.
// A field pushed twice becomes {"$each": [...]}, the server only takes one
// entry per field and operator.
func getUpdate(update database.Update) bson.D {
	var doc bson.D
	position := make(map[database.UpdateOperator]int)
	for _, m := range update {
		i, ok := position[m.Op]
		if !ok {
			i = len(doc)
			position[m.Op] = i
			doc = append(doc, bson.E{Key: m.Op.String(), Value: bson.D{}})
		}
		fields := doc[i].Value.(bson.D)
		doc[i].Value = addField(fields, m)
	}
	return doc
}

func addField(fields bson.D, m database.Mutation) bson.D {
	for j, f := range fields {
		if f.Key != m.Field {
			continue
		}
		if m.Op == database.Push {
			fields[j].Value = appendEach(f.Value, m.Value)
		} else {
			fields[j].Value = appendIn(f.Value, m.Value)
		}
		return fields
	}
	return append(fields, bson.E{Key: m.Field, Value: m.Value})
}

func appendEach(existing, value any) bson.D {
	if d, ok := existing.(bson.D); ok && len(d) == 1 && d[0].Key == "$each" {
		return bson.D{{Key: "$each", Value: append(d[0].Value.(bson.A), value)}}
	}
	return bson.D{{Key: "$each", Value: bson.A{existing, value}}}
}

func appendIn(existing, value any) bson.D {
	if d, ok := existing.(bson.D); ok && len(d) == 1 && d[0].Key == "$in" {
		return bson.D{{Key: "$in", Value: append(d[0].Value.(bson.A), value)}}
	}
	return bson.D{{Key: "$in", Value: bson.A{existing, value}}}
}

// fromBSON converts decoded values to Documents and []any recursively.
func fromBSON(raw bson.M) database.Document {
	doc := make(database.Document, len(raw))
	for k, v := range raw {
		doc[k] = convertValue(v)
	}
	return doc
}

func convertValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return fromBSON(val)
	case bson.D:
		return fromBSON(val.Map())
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertValue(item)
		}
		return out
	default:
		return v
	}
}
