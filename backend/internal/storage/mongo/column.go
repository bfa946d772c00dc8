package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
)

func (s *Storage) CreateColumn(ctx context.Context, column *domain.Column) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		return s.columns.InsertOne(ctx, column)
	})
	return err
}

func (s *Storage) GetColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) (*domain.Column, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		var column domain.Column
		err := s.columns.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&column)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal_errors.NotFound("Column not found")
		}
		if err != nil {
			return nil, err
		}
		return &column, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.Column), nil
}

func (s *Storage) GetColumnsByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Column, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		cursor, err := s.columns.Find(ctx, bson.M{"tenantId": tenant, "boardId": boardId},
			options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		columns := []domain.Column{}
		if err := cursor.All(ctx, &columns); err != nil {
			return nil, err
		}
		return columns, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Column), nil
}

func (s *Storage) CountColumns(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) (int, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		count, err := s.columns.CountDocuments(ctx, bson.M{"tenantId": tenant, "boardId": boardId})
		if err != nil {
			return nil, err
		}
		return int(count), nil
	})
	if err != nil {
		return 0, err
	}
	return res.(int), nil
}

func (s *Storage) UpdateColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId, upd domain.ColumnUpdateData) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		update := bson.M{"$set": bson.M{"title": upd.Title, "color": upd.Color}}
		result, err := s.columns.UpdateOne(ctx, bson.M{"_id": id, "tenantId": tenant}, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, internal_errors.NotFound("Column not found")
		}
		return nil, nil
	})
	return err
}

// DeleteColumn cascades to the column's cards. Sibling column positions are
// left untouched; column ordering tolerates gaps.
func (s *Storage) DeleteColumn(ctx context.Context, tenant domain.TenantId, id domain.ColumnId) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := s.cards.DeleteMany(ctx, bson.M{"tenantId": tenant, "columnId": id}); err != nil {
			return nil, err
		}
		result, err := s.columns.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenant})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, internal_errors.NotFound("Column not found")
		}
		return nil, nil
	})
	return err
}
