package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruralcrm/taskboard/shared/domain"
	internal_errors "github.com/ruralcrm/taskboard/shared/errors"
)

func (s *Storage) CreateCard(ctx context.Context, card *domain.Card) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		return s.cards.InsertOne(ctx, card)
	})
	return err
}

func (s *Storage) GetCard(ctx context.Context, tenant domain.TenantId, id domain.CardId) (*domain.Card, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		var card domain.Card
		err := s.cards.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&card)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal_errors.NotFound("Card not found")
		}
		if err != nil {
			return nil, err
		}
		return &card, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.Card), nil
}

func (s *Storage) GetCardsByColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) ([]domain.Card, error) {
	return s.findCards(ctx, bson.M{"tenantId": tenant, "columnId": columnId},
		bson.D{{Key: "position", Value: 1}})
}

func (s *Storage) GetCardsByBoard(ctx context.Context, tenant domain.TenantId, boardId domain.BoardId) ([]domain.Card, error) {
	return s.findCards(ctx, bson.M{"tenantId": tenant, "boardId": boardId},
		bson.D{{Key: "columnId", Value: 1}, {Key: "position", Value: 1}})
}

func (s *Storage) findCards(ctx context.Context, filter bson.M, sort bson.D) ([]domain.Card, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		cursor, err := s.cards.Find(ctx, filter, options.Find().SetSort(sort))
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		cards := []domain.Card{}
		if err := cursor.All(ctx, &cards); err != nil {
			return nil, err
		}
		return cards, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Card), nil
}

func (s *Storage) CountCardsInColumn(ctx context.Context, tenant domain.TenantId, columnId domain.ColumnId) (int, error) {
	res, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		count, err := s.cards.CountDocuments(ctx, bson.M{"tenantId": tenant, "columnId": columnId})
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

func (s *Storage) UpdateCard(ctx context.Context, tenant domain.TenantId, id domain.CardId, upd domain.CardUpdateData) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		update := bson.M{"$set": bson.M{
			"title":       upd.Title,
			"description": upd.Description,
			"dueDate":     upd.DueDate,
			"priority":    upd.Priority,
			"labels":      upd.Labels,
			"assignee":    upd.Assignee,
			"done":        upd.Done,
			"updatedAt":   time.Now().UTC(),
		}}
		result, err := s.cards.UpdateOne(ctx, bson.M{"_id": id, "tenantId": tenant}, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, internal_errors.NotFound("Card not found")
		}
		return nil, nil
	})
	return err
}

// SetCardColumn is the authoritative "where the card lives" write of a move.
// BoardId is denormalized from the destination column.
func (s *Storage) SetCardColumn(ctx context.Context, tenant domain.TenantId, id domain.CardId, columnId domain.ColumnId, boardId domain.BoardId) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		update := bson.M{"$set": bson.M{
			"columnId":  columnId,
			"boardId":   boardId,
			"updatedAt": time.Now().UTC(),
		}}
		result, err := s.cards.UpdateOne(ctx, bson.M{"_id": id, "tenantId": tenant}, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, internal_errors.NotFound("Card not found")
		}
		return nil, nil
	})
	return err
}

func (s *Storage) SetCardPosition(ctx context.Context, tenant domain.TenantId, id domain.CardId, position domain.Position) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		result, err := s.cards.UpdateOne(ctx,
			bson.M{"_id": id, "tenantId": tenant},
			bson.M{"$set": bson.M{"position": position}})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, internal_errors.NotFound("Card not found")
		}
		return nil, nil
	})
	return err
}

func (s *Storage) DeleteCard(ctx context.Context, tenant domain.TenantId, id domain.CardId) error {
	_, err := s.execute(ctx, func(ctx context.Context) (interface{}, error) {
		result, err := s.cards.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenant})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, internal_errors.NotFound("Card not found")
		}
		return nil, nil
	})
	return err
}
