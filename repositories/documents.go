package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"second-brain/models"
)

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection("documents")}
}

// Upsert writes the document keyed by doc_id, overwriting any prior
// record for the same id.
func (r *DocumentRepository) Upsert(ctx context.Context, doc models.Document) error {
	now := time.Now()
	doc.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"updated_at":   doc.UpdatedAt,
			"source_kind":  doc.SourceKind,
			"source_url":   doc.SourceURL,
			"raw_text":     doc.RawText,
			"clean_text":   doc.CleanText,
			"summary_text": doc.SummaryText,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"doc_id": doc.DocID},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *DocumentRepository) FindByDocID(ctx context.Context, docID string) (*models.Document, error) {
	var doc models.Document
	err := r.col.FindOne(ctx, bson.M{"doc_id": docID}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, limit int64) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
