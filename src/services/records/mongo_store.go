package records

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"Backend-Hostel-Billing/src/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore เก็บข้อมูลนักศึกษาหนึ่ง document ต่อหนึ่งคน โดยใช้ชื่อคอลัมน์จากไฟล์ Excel เป็นชื่อฟิลด์
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// EnsureIndexes creates the unique index on Reg No.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: models.ColRegNo, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("reg_no_unique"),
	})
	return err
}

func (s *MongoStore) List(ctx context.Context) ([]*models.StudentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*models.StudentRecord, 0, len(docs))
	for _, doc := range docs {
		out = append(out, recordFromDocument(doc))
	}
	return out, nil
}

func (s *MongoStore) FindByCredentials(ctx context.Context, reg, dob string) (*models.StudentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{models.ColRegNo: reg, models.ColDOB: dob}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetLimit(2))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, ErrInvalidCredentials
	}
	return recordFromDocument(docs[0]), nil
}

func (s *MongoStore) FindByReg(ctx context.Context, reg string) (*models.StudentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc bson.D
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	err := s.coll.FindOne(ctx, bson.M{models.ColRegNo: reg}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
		}
		return nil, err
	}
	return recordFromDocument(doc), nil
}

func (s *MongoStore) SetField(ctx context.Context, reg, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: documentValue(field, value)}}
	res, err := s.coll.UpdateMany(ctx, bson.M{models.ColRegNo: reg}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
	}
	return nil
}

func (s *MongoStore) AddPayment(ctx context.Context, reg string, amount decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{models.ColTotalPaid: amount.InexactFloat64()}}
	res, err := s.coll.UpdateMany(ctx, bson.M{models.ColRegNo: reg}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, reg)
	}
	return nil
}

// Upsert replaces the student's document, inserting it when missing.
func (s *MongoStore) Upsert(ctx context.Context, rec *models.StudentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	doc := make(bson.D, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		doc = append(doc, bson.E{Key: f.Name, Value: documentValue(f.Name, f.Value)})
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{models.ColRegNo: rec.RegNo()}, doc, options.Replace().SetUpsert(true))
	return err
}

// documentValue stores amounts as numbers so $inc keeps working.
func documentValue(field, value string) interface{} {
	if models.IsAmountColumn(field) {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d.InexactFloat64()
		}
	}
	return value
}

func recordFromDocument(doc bson.D) *models.StudentRecord {
	rec := &models.StudentRecord{Fields: make([]models.RecordField, 0, len(doc))}
	for _, e := range doc {
		if e.Key == "_id" {
			continue
		}
		rec.Fields = append(rec.Fields, models.RecordField{Name: e.Key, Value: stringify(e.Value)})
	}
	return rec
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case primitive.Decimal128:
		return val.String()
	case primitive.DateTime:
		return val.Time().UTC().Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}
