package repository

import (
	"context"

	"caterfind/internal/domain"
	"caterfind/internal/repository/dao"
)

type userRepository struct {
	dao dao.UserDAO
}

func (repo *userRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(user))
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := repo.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(user), nil
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(user), nil
}

func (repo *userRepository) toEntity(user domain.User) dao.User {
	return dao.User{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.Password,
		Role:     user.Role.String(),
	}
}

func (repo *userRepository) toDomain(user dao.User) domain.User {
	return domain.User{
		ID:       user.ID,
		Email:    user.Email,
		Password: user.Password,
		Role:     domain.UserRole(user.Role),
	}
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(dao dao.UserDAO) UserRepository {
	return &userRepository{dao: dao}
}
