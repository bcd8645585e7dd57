package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
	"lsv_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	languageCachePrefix = "languages:page:"
	languageCacheTTL    = 5 * time.Minute
)

// LanguageService caches the public catalog pages in redis. The catalog
// changes rarely and is read on every app start, so a short TTL plus
// write-through invalidation keeps the list cheap without serving stale
// data for long.
type LanguageService struct {
	Languages *repository.LanguageRepository
	Redis     *redis.Client
}

func NewLanguageService(languages *repository.LanguageRepository, rdb *redis.Client) *LanguageService {
	return &LanguageService{Languages: languages, Redis: rdb}
}

type LanguageReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type languageCachePage struct {
	Languages []model.Language `json:"languages"`
	Total     int64            `json:"total"`
}

func (s *LanguageService) CreateLanguage(req LanguageReq) (*model.Language, error) {
	language := &model.Language{Name: req.Name, Description: req.Description}
	if err := s.Languages.Create(language); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return language, nil
}

func (s *LanguageService) UpdateLanguage(id string, req LanguageReq) (*model.Language, error) {
	language, err := s.Languages.FindByID(id)
	if err != nil {
		return nil, err
	}
	language.Name = req.Name
	language.Description = req.Description
	if err := s.Languages.Update(language); err != nil {
		return nil, err
	}
	s.invalidateCache(context.Background())
	return language, nil
}

func (s *LanguageService) DeleteLanguage(id string) error {
	if _, err := s.Languages.FindByID(id); err != nil {
		return err
	}
	if err := s.Languages.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(context.Background())
	return nil
}

func (s *LanguageService) GetLanguageByID(id string) (*model.Language, error) {
	return s.Languages.FindByID(id)
}

func (s *LanguageService) GetLanguages(ctx context.Context, pagination util.Pagination) ([]model.Language, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}

	cacheKey := fmt.Sprintf("%s%d:%d:%s:%s",
		languageCachePrefix, pagination.Page, pagination.Limit, pagination.OrderBy, pagination.SortOrder)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var page languageCachePage
			if json.Unmarshal([]byte(cached), &page) == nil {
				return page.Languages, page.Total, nil
			}
		}
	}

	languages, total, err := s.Languages.FindAll(pagination)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(languageCachePage{Languages: languages, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, raw, languageCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache language page", zap.Error(err))
			}
		}
	}
	return languages, total, nil
}

func (s *LanguageService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	iter := s.Redis.Scan(ctx, 0, languageCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Log.Warn("failed to evict language cache key",
				zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("language cache scan failed", zap.Error(err))
	}
}
