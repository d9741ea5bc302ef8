package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/vibecommerce/user-service/cmd/config"
	"github.com/vibecommerce/user-service/constant"
	"github.com/vibecommerce/user-service/mapper"
	"github.com/vibecommerce/user-service/model"
	userrepo "github.com/vibecommerce/user-service/repository/user"
	cerr "github.com/vibecommerce/user-service/utils/errors"
	"github.com/vibecommerce/user-service/utils/logger"
	"go.uber.org/zap"
)

const defaultQueryTimeout = 5 * time.Second

// mysqlDuplicateEntry is the server error code for a unique-key violation.
// It backstops the advisory email pre-check under concurrent registration.
const mysqlDuplicateEntry = 1062

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error)
	GetByID(ctx context.Context, id uint64) (*model.UserResponse, error)
	ListAll(ctx context.Context) ([]model.UserResponse, error)
	Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher emits user lifecycle events. A nil publisher disables
// publishing; failures are logged and never surfaced to the caller.
type EventPublisher interface {
	PublishUserEvent(event string, userID uint64, email string) error
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	publisher EventPublisher
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, publisher EventPublisher) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.UserResponse, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("[Register] err userRepo.ExistsByEmail", zap.String("error", err.Error()))
		return nil, storeError(err)
	}
	if exists {
		return nil, cerr.SetCustomError(constant.ErrEmailExists)
	}

	userEntity := mapper.ToUserEntity(req)

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, storeError(err)
	}

	s.publish(constant.EventUserRegistered, userEntity.ID, userEntity.Email)

	return mapper.ToUserResponse(userEntity), nil
}

func (s *UserAppImpl) GetByID(ctx context.Context, id uint64) (*model.UserResponse, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	userEntity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err userRepo.GetByID", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, storeError(err)
	}
	if userEntity == nil {
		return nil, notFound(id)
	}

	return mapper.ToUserResponse(userEntity), nil
}

func (s *UserAppImpl) ListAll(ctx context.Context) ([]model.UserResponse, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListAll] err userRepo.List", zap.String("error", err.Error()))
		return nil, storeError(err)
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapper.ToUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	userEntity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] err userRepo.GetByID", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, storeError(err)
	}
	if userEntity == nil {
		return nil, notFound(id)
	}

	// re-check uniqueness when the email actually changes; the unique
	// index on the table remains the last-resort enforcement
	if req.Email != nil && *req.Email != userEntity.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			logger.Error("[Update] err userRepo.ExistsByEmail", zap.String("error", err.Error()))
			return nil, storeError(err)
		}
		if exists {
			return nil, cerr.SetCustomError(constant.ErrEmailExists)
		}
	}

	mapper.ApplyUpdate(req, userEntity)

	if err := s.userRepo.Update(ctx, userEntity); err != nil {
		logger.Error("[Update] err userRepo.Update", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, storeError(err)
	}

	s.publish(constant.EventUserUpdated, userEntity.ID, userEntity.Email)

	return mapper.ToUserResponse(userEntity), nil
}

func (s *UserAppImpl) Delete(ctx context.Context, id uint64) error {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	userEntity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Delete] err userRepo.GetByID", zap.Uint64("id", id), zap.String("error", err.Error()))
		return storeError(err)
	}
	if userEntity == nil {
		return notFound(id)
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err userRepo.Delete", zap.Uint64("id", id), zap.String("error", err.Error()))
		return storeError(err)
	}
	if !deleted {
		// row vanished between load and delete
		return notFound(id)
	}

	s.publish(constant.EventUserDeleted, id, userEntity.Email)

	return nil
}

// storeCtx bounds every store interaction with the configured timeout.
func (s *UserAppImpl) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if s.config != nil && s.config.Database.QueryTimeout > 0 {
		timeout = s.config.Database.QueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *UserAppImpl) publish(event string, userID uint64, email string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishUserEvent(event, userID, email); err != nil {
		logger.Warn("[publish] err publisher.PublishUserEvent", zap.String("event", event), zap.Uint64("user_id", userID), zap.String("error", err.Error()))
	}
}

// storeError translates persistence failures: unique-key violations become
// duplicate-email conflicts, deadline expiry becomes a transient timeout,
// everything else is internal.
func storeError(err error) error {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return cerr.SetCustomError(constant.ErrEmailExists)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return cerr.SetCustomError(constant.ErrTimeout)
	}
	return cerr.SetCustomError(constant.ErrInternal)
}

func notFound(id uint64) error {
	return cerr.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("user with id %d not found", id))
}
