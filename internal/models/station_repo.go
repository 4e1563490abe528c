package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) ListStations(ctx context.Context) ([]*Station, error) {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding stations: %v", err)
	}
	defer cursor.Close(ctx)

	var stations []*Station
	for cursor.Next(ctx) {
		var station Station
		if err := cursor.Decode(&station); err != nil {
			return nil, fmt.Errorf("error decoding station: %v", err)
		}
		stations = append(stations, &station)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return stations, nil
}

func (mdb *MongodbRepo) GetStationByID(ctx context.Context, id string) (*Station, error) {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrStationNotFound
	}

	var station Station
	if err := col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&station); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStationNotFound
		}
		return nil, fmt.Errorf("error finding station: %v", err)
	}

	return &station, nil
}

func (mdb *MongodbRepo) CreateStation(ctx context.Context, station *Station) (*Station, error) {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, station)
	if err != nil {
		return nil, fmt.Errorf("error inserting station: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		station.ID = oid
	}

	return station, nil
}

func (mdb *MongodbRepo) DeleteStation(ctx context.Context, id string) error {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrStationNotFound
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting station: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrStationNotFound
	}

	return nil
}

// UpdateStationSlots replaces only the slots array. Writing the whole
// document would clobber the GeoJSON coordinates subdocument, so the
// update is scoped to the one field the caller changed.
func (mdb *MongodbRepo) UpdateStationSlots(ctx context.Context, id string, slots []Slot) error {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrStationNotFound
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"slots": slots}})
	if err != nil {
		return fmt.Errorf("error updating slots: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrStationNotFound
	}

	return nil
}

func (mdb *MongodbRepo) CountStations(ctx context.Context) (int64, error) {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting stations: %v", err)
	}

	return count, nil
}

func (mdb *MongodbRepo) InsertStations(ctx context.Context, stations []*Station) error {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	docs := make([]interface{}, 0, len(stations))
	for _, s := range stations {
		docs = append(docs, s)
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting stations: %v", err)
	}

	return nil
}

// WatchStation opens a change stream scoped to one station document and
// returns a cancellable watcher. Events are delivered in stream order;
// the channel is closed when the stream ends or the watcher is closed.
func (mdb *MongodbRepo) WatchStation(ctx context.Context, id string) (*StationWatcher, error) {
	col, err := mdb.collection(ctx, StationsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrStationNotFound
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": objectID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := col.Watch(streamCtx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error opening change stream: %v", err)
	}

	events := make(chan StationEvent)
	go func() {
		defer close(events)
		defer stream.Close(streamCtx)

		for stream.Next(streamCtx) {
			var change struct {
				OperationType string   `bson:"operationType"`
				FullDocument  *Station `bson:"fullDocument"`
			}
			if err := stream.Decode(&change); err != nil {
				continue
			}

			select {
			case events <- StationEvent{Type: change.OperationType, Station: change.FullDocument}:
			case <-streamCtx.Done():
				return
			}
		}
	}()

	return &StationWatcher{Events: events, cancel: cancel}, nil
}
