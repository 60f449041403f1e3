package user

import (
	"context"

	"github.com/muhammadheryan/user-directory/constant"
	"github.com/muhammadheryan/user-directory/model"
	userrepo "github.com/muhammadheryan/user-directory/repository/user"
	"github.com/muhammadheryan/user-directory/utils/errors"
	"github.com/muhammadheryan/user-directory/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	List(ctx context.Context) ([]model.UserView, error)
	ListPaged(ctx context.Context, limit, offset int64) ([]model.UserView, error)
	GetByID(ctx context.Context, id int64) (*model.UserView, error)
	Create(ctx context.Context, req *model.UserRequest) (*model.UserView, error)
	Update(ctx context.Context, id int64, req *model.UserRequest) (*model.UserView, error)
	Delete(ctx context.Context, id int64) error
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
	}
}

func (s *UserAppImpl) List(ctx context.Context) ([]model.UserView, error) {
	entities, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	return toViews(entities), nil
}

func (s *UserAppImpl) ListPaged(ctx context.Context, limit, offset int64) ([]model.UserView, error) {
	entities, err := s.userRepo.ListPaged(ctx, limit, offset)
	if err != nil {
		logger.Error("[ListPaged] err userRepo.ListPaged", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	return toViews(entities), nil
}

func (s *UserAppImpl) GetByID(ctx context.Context, id int64) (*model.UserView, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return model.NewUserView(entity), nil
}

func (s *UserAppImpl) Create(ctx context.Context, req *model.UserRequest) (*model.UserView, error) {
	entity, err := s.userRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[Create] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	return model.NewUserView(entity), nil
}

func (s *UserAppImpl) Update(ctx context.Context, id int64, req *model.UserRequest) (*model.UserView, error) {
	entity, err := s.userRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[Update] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return model.NewUserView(entity), nil
}

func (s *UserAppImpl) Delete(ctx context.Context, id int64) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	return nil
}

func toViews(entities []model.UserEntity) []model.UserView {
	views := make([]model.UserView, 0, len(entities))
	for i := range entities {
		views = append(views, *model.NewUserView(&entities[i]))
	}
	return views
}
