package repository

import (
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("phone_number = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByEmailOrPhone backs the duplicate check at registration.
func (r *UserRepository) ExistsByEmailOrPhone(email string, phone *string) (bool, error) {
	q := r.DB.Model(&entity.User{}).Where("email = ?", email)
	if phone != nil && *phone != "" {
		q = r.DB.Model(&entity.User{}).Where("email = ? OR phone_number = ?", email, *phone)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}
