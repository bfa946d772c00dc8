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

func (s *Storage) CreateBoard(ctx context.Context, board *domain.Board) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		return s.boards.InsertOne(ctx, board)
	})
	return err
}

func (s *Storage) GetBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId) (*domain.Board, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		var board domain.Board
		err := s.boards.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&board)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal_errors.NotFound("Board not found")
		}
		if err != nil {
			return nil, err
		}
		return &board, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.Board), nil
}

func (s *Storage) GetBoards(ctx context.Context, tenant domain.TenantId) ([]domain.Board, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		cursor, err := s.boards.Find(ctx, bson.M{"tenantId": tenant},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		boards := []domain.Board{}
		if err := cursor.All(ctx, &boards); err != nil {
			return nil, err
		}
		return boards, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Board), nil
}

func (s *Storage) UpdateBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId, upd domain.BoardUpdateData) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		update := bson.M{"$set": bson.M{
			"title":       upd.Title,
			"description": upd.Description,
			"color":       upd.Color,
		}}
		result, err := s.boards.UpdateOne(ctx, bson.M{"_id": id, "tenantId": tenant}, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, internal_errors.NotFound("Board not found")
		}
		return nil, nil
	})
	return err
}

// DeleteBoard cascades: the board's cards and columns go with it.
func (s *Storage) DeleteBoard(ctx context.Context, tenant domain.TenantId, id domain.BoardId) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		scope := bson.M{"tenantId": tenant, "boardId": id}
		if _, err := s.cards.DeleteMany(ctx, scope); err != nil {
			return nil, err
		}
		if _, err := s.columns.DeleteMany(ctx, scope); err != nil {
			return nil, err
		}
		result, err := s.boards.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenant})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, internal_errors.NotFound("Board not found")
		}
		return nil, nil
	})
	return err
}
