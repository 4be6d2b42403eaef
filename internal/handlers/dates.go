package handlers

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var errInvalidDate = errors.New("invalid date format")

// ownerFilter builds the Mongo filter every log read/delete starts from:
// scoped to the owning user, optionally restricted to one calendar day.
func ownerFilter(userID, date string) (bson.M, error) {
	filter := bson.M{"user_id": userID}
	if date != "" {
		start, end, err := dayRange(date)
		if err != nil {
			return nil, err
		}
		filter["timestamp"] = bson.M{"$gte": start, "$lt": end}
	}
	return filter, nil
}

// dayRange converts a YYYY-MM-DD date string into the [midnight UTC,
// next midnight UTC) window for that calendar day.
func dayRange(date string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDate
	}
	start = start.UTC()
	return start, start.AddDate(0, 0, 1), nil
}
