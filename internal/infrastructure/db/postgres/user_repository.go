package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tutorial-service/internal/domain/entities"
	"tutorial-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapUserToModel(user.GetUser())

	if err := r.db.Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(userModel.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapUserToEntity(&userModel), nil
}

func (r *UserRepository) FindAll(filter repositories.UserFilter) ([]*entities.User, error) {
	query := r.db.Model(&UserModel{})

	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}

	var userModels []UserModel
	if err := query.Offset(filter.Offset()).Limit(filter.Limit).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mapUserToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapUserToModel(user.GetUser())

	if err := r.db.Save(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the updated user to ensure data integrity
	return r.FindById(userModel.Id)
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&UserModel{}, "id = ?", id).Error
}

func mapUserToModel(user *entities.User) UserModel {
	return UserModel{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
	}
}

func mapUserToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Name:      userModel.Name,
		Email:     userModel.Email,
		Password:  userModel.Password,
	}
}
