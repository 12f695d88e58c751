package repository

import (
	"context"
	"errors"

	"caterfind/internal/domain"
	"caterfind/internal/repository/cache"
	"caterfind/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// contactRepository 联系人仓储。GetByID 是群发解析收件人的热路径，
// 读取顺序：本地缓存 → redis → 数据库，写路径失效两级缓存。
type contactRepository struct {
	dao        dao.ContactDAO
	localCache cache.ContactCache
	redisCache cache.ContactCache
	logger     *elog.Component
}

func (repo *contactRepository) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(contact), contact.Labels)
	if err != nil {
		return domain.Contact{}, err
	}
	res := repo.toDomain(created)
	res.Labels = contact.Labels
	return res, nil
}

func (repo *contactRepository) Update(ctx context.Context, contact domain.Contact) error {
	err := repo.dao.Update(ctx, repo.toEntity(contact), contact.Labels)
	if err != nil {
		return err
	}
	repo.delCache(ctx, contact.ID)
	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	repo.delCache(ctx, id)
	return nil
}

func (repo *contactRepository) GetByID(ctx context.Context, id int64) (domain.Contact, error) {
	contact, err := repo.localCache.Get(ctx, id)
	if err == nil {
		return contact, nil
	}
	contact, err = repo.redisCache.Get(ctx, id)
	if err == nil {
		if er := repo.localCache.Set(ctx, contact); er != nil {
			repo.logger.Warn("回填本地缓存失败", elog.FieldErr(er), elog.Int64("contactID", id))
		}
		return contact, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		repo.logger.Warn("读取redis缓存失败", elog.FieldErr(err), elog.Int64("contactID", id))
	}

	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Contact{}, err
	}
	labels, err := repo.dao.GetLabelNames(ctx, entity.ID)
	if err != nil {
		return domain.Contact{}, err
	}
	contact = repo.toDomain(entity)
	contact.Labels = labels
	repo.setCache(ctx, contact)
	return contact, nil
}

func (repo *contactRepository) FindByCaterer(ctx context.Context, catererID int64) ([]domain.Contact, error) {
	entities, err := repo.dao.FindByCaterer(ctx, catererID)
	if err != nil {
		return nil, err
	}
	contacts := make([]domain.Contact, 0, len(entities))
	for _, entity := range entities {
		contact := repo.toDomain(entity)
		labels, err := repo.dao.GetLabelNames(ctx, entity.ID)
		if err != nil {
			return nil, err
		}
		contact.Labels = labels
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func (repo *contactRepository) CountByCaterer(ctx context.Context, catererID int64) (int64, error) {
	return repo.dao.CountByCaterer(ctx, catererID)
}

// setCache 缓存写失败不影响主流程，只记日志
func (repo *contactRepository) setCache(ctx context.Context, contact domain.Contact) {
	if err := repo.localCache.Set(ctx, contact); err != nil {
		repo.logger.Warn("写入本地缓存失败", elog.FieldErr(err), elog.Int64("contactID", contact.ID))
	}
	if err := repo.redisCache.Set(ctx, contact); err != nil {
		repo.logger.Warn("写入redis缓存失败", elog.FieldErr(err), elog.Int64("contactID", contact.ID))
	}
}

func (repo *contactRepository) delCache(ctx context.Context, id int64) {
	if err := repo.localCache.Del(ctx, id); err != nil {
		repo.logger.Warn("删除本地缓存失败", elog.FieldErr(err), elog.Int64("contactID", id))
	}
	if err := repo.redisCache.Del(ctx, id); err != nil {
		repo.logger.Warn("删除redis缓存失败", elog.FieldErr(err), elog.Int64("contactID", id))
	}
}

func (repo *contactRepository) toEntity(contact domain.Contact) dao.Contact {
	return dao.Contact{
		ID:                     contact.ID,
		CatererID:              contact.CatererID,
		Name:                   contact.Name,
		Phone:                  contact.Phone,
		Email:                  contact.Email,
		PreferredContactMethod: contact.Preferred.String(),
	}
}

func (repo *contactRepository) toDomain(contact dao.Contact) domain.Contact {
	return domain.Contact{
		ID:        contact.ID,
		CatererID: contact.CatererID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Preferred: domain.ContactMethod(contact.PreferredContactMethod),
		Ctime:     contact.Ctime,
		Utime:     contact.Utime,
	}
}

// NewContactRepository 创建联系人仓储实例
func NewContactRepository(dao dao.ContactDAO, localCache, redisCache cache.ContactCache) ContactRepository {
	return &contactRepository{
		dao:        dao,
		localCache: localCache,
		redisCache: redisCache,
		logger:     elog.DefaultLogger,
	}
}
