package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"theinsight/internal/model"
)

// ContentRepo loads the static question and narrative tables. The server
// reads each table exactly once at startup; cmd/seed is the only writer.
type ContentRepo interface {
	LoadQuestions(ctx context.Context) ([]model.Question, error)
	LoadResults(ctx context.Context) ([]model.ResultContent, error)
	SeedQuestions(ctx context.Context, questions []model.Question) error
	SeedResults(ctx context.Context, results []model.ResultContent) error
}

type contentRepo struct {
	questions *mongo.Collection
	results   *mongo.Collection
}

// NewContentRepo creates a content repo over the given database
func NewContentRepo(db *mongo.Database) ContentRepo {
	return &contentRepo{
		questions: db.Collection("questions"),
		results:   db.Collection("results"),
	}
}

func (r *contentRepo) LoadQuestions(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *contentRepo) LoadResults(ctx context.Context) ([]model.ResultContent, error) {
	cursor, err := r.results.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.ResultContent
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contentRepo) SeedQuestions(ctx context.Context, questions []model.Question) error {
	if err := r.questions.Drop(ctx); err != nil {
		return err
	}
	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = q
	}
	_, err := r.questions.InsertMany(ctx, docs)
	return err
}

func (r *contentRepo) SeedResults(ctx context.Context, results []model.ResultContent) error {
	if err := r.results.Drop(ctx); err != nil {
		return err
	}
	docs := make([]interface{}, len(results))
	for i, rc := range results {
		docs[i] = rc
	}
	_, err := r.results.InsertMany(ctx, docs)
	return err
}
