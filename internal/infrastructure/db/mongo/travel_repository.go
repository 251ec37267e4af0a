package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

const collectionTravels = "travels"

// TravelRepository is the Mongo-backed travel record store.
type TravelRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTravelRepository(db *mongo.Database) *TravelRepository {
	return &TravelRepository{db: db, coll: db.Collection(collectionTravels)}
}

// mongoTravel is the persisted shape. The proposed fields are stored as a
// group: either all present or all absent, mirroring the revision sub-state.
type mongoTravel struct {
	ID                  int64      `bson:"_id"`
	OwnerID             int64      `bson:"owner_id"`
	StartDate           time.Time  `bson:"start_date"`
	EndDate             time.Time  `bson:"end_date"`
	Destination         string     `bson:"destination"`
	ProposedStartDate   *time.Time `bson:"proposed_start_date,omitempty"`
	ProposedEndDate     *time.Time `bson:"proposed_end_date,omitempty"`
	ProposedDestination *string    `bson:"proposed_destination,omitempty"`
	EditRequestDate     *time.Time `bson:"edit_request_date,omitempty"`
	CreatedDate         time.Time  `bson:"created_date"`
	UpdatedDate         time.Time  `bson:"updated_date"`
}

func (r *TravelRepository) Create(ctx context.Context, travel *domain.Travel) (*domain.Travel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionTravels)
	if err != nil {
		return nil, err
	}

	doc := toMongoTravel(travel)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert travel: %w", err)
	}

	out := *travel
	out.ID = id
	return &out, nil
}

func (r *TravelRepository) FindByID(ctx context.Context, id int64) (*domain.Travel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTravel
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.E(domain.KindNotFound, "travel record not found")
		}
		return nil, fmt.Errorf("find travel: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TravelRepository) List(ctx context.Context, q ports.TravelQuery) ([]*domain.Travel, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.OwnerID != 0 {
		filter["owner_id"] = q.OwnerID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count travels: %w", err)
	}

	dir := 1
	if q.Order == ports.SortDesc {
		dir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortColumn(q.Sort), Value: dir}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list travels: %w", err)
	}
	defer cursor.Close(ctx)

	var travels []*domain.Travel
	for cursor.Next(ctx) {
		var mt mongoTravel
		if err := cursor.Decode(&mt); err != nil {
			return nil, 0, fmt.Errorf("decode travel: %w", err)
		}
		travels = append(travels, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate travels: %w", err)
	}
	return travels, total, nil
}

func (r *TravelRepository) Update(ctx context.Context, travel *domain.Travel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoTravel(travel)
	doc.ID = travel.ID
	// ReplaceOne keeps the all-or-nothing proposed field group intact: the
	// omitempty pointers drop the whole group when the record is clean.
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": travel.ID}, doc)
	if err != nil {
		return fmt.Errorf("update travel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.E(domain.KindNotFound, "travel record not found")
	}
	return nil
}

func (r *TravelRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete travel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.E(domain.KindNotFound, "travel record not found")
	}
	return nil
}

// EnsureIndexes creates the indexes the owner filter and sorts rely on.
func (r *TravelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_date", Value: -1}}},
		{Keys: bson.D{{Key: "edit_request_date", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func sortColumn(f ports.SortField) string {
	if f == ports.SortEditRequestDate {
		return "edit_request_date"
	}
	return "created_date"
}

func toMongoTravel(t *domain.Travel) mongoTravel {
	return mongoTravel{
		ID:                  t.ID,
		OwnerID:             t.OwnerID,
		StartDate:           t.StartDate,
		EndDate:             t.EndDate,
		Destination:         t.Destination,
		ProposedStartDate:   t.ProposedStartDate,
		ProposedEndDate:     t.ProposedEndDate,
		ProposedDestination: t.ProposedDestination,
		EditRequestDate:     t.EditRequestDate,
		CreatedDate:         t.CreatedDate,
		UpdatedDate:         t.UpdatedDate,
	}
}

func (mt *mongoTravel) toDomain() *domain.Travel {
	return &domain.Travel{
		ID:                  mt.ID,
		OwnerID:             mt.OwnerID,
		StartDate:           mt.StartDate.UTC(),
		EndDate:             mt.EndDate.UTC(),
		Destination:         mt.Destination,
		ProposedStartDate:   utcPtr(mt.ProposedStartDate),
		ProposedEndDate:     utcPtr(mt.ProposedEndDate),
		ProposedDestination: mt.ProposedDestination,
		EditRequestDate:     utcPtr(mt.EditRequestDate),
		CreatedDate:         mt.CreatedDate.UTC(),
		UpdatedDate:         mt.UpdatedDate.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
