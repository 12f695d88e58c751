package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caterfind/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type userDAO struct {
	db *egorm.Component
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (dao *userDAO) Create(ctx context.Context, user User) (User, error) {
	now := time.Now().UnixMilli()
	user.Ctime, user.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return User{}, fmt.Errorf("%w: %s", errs.ErrUserDuplicate, user.Email)
		}
		return User{}, err
	}
	return user, nil
}

func (dao *userDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, fmt.Errorf("%w: email=%s", errs.ErrUserNotFound, email)
		}
		return User{}, err
	}
	return user, nil
}

func (dao *userDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var user User
	err := dao.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, fmt.Errorf("%w: id=%d", errs.ErrUserNotFound, id)
		}
		return User{}, err
	}
	return user, nil
}

// NewUserDAO 创建用户DAO实例
func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

// User 用户表
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:uk_email;comment:'登录邮箱'"`
	Password string `gorm:"type:VARCHAR(128);NOT NULL;comment:'明文口令，等值比较，非安全机制'"`
	Role     string `gorm:"type:ENUM('CATERER','CLIENT');NOT NULL;DEFAULT:'CATERER';comment:'角色'"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}
