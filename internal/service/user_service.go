package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-gin-result-starter/internal/domain"
	"go-gin-result-starter/pkg/result"
	"go-gin-result-starter/pkg/utils"
)

// TokenIssuer 由 auth.JWTer 实现
type TokenIssuer interface {
	Issue(uid, role string) (string, error)
}

type LoginResult struct {
	Token string         `json:"token"`
	IsNew bool           `json:"isNew"`
	User  domain.Profile `json:"user"`
}

type Page struct {
	Total int64            `json:"total"`
	Items []domain.Profile `json:"items"`
}

// UserService 所有失败都以 *result.Error 返回，由传输层转成统一响应
type UserService struct {
	repo   domain.UserRepository
	cache  domain.ProfileCache // 可为 nil
	tokens TokenIssuer
	l      *zap.Logger
}

func NewUserService(repo domain.UserRepository, cache domain.ProfileCache, tokens TokenIssuer, l *zap.Logger) *UserService {
	if l == nil {
		l = zap.NewNop()
	}
	return &UserService{repo: repo, cache: cache, tokens: tokens, l: l}
}

// Login 邮箱不存在则自动注册并签发 token
func (s *UserService) Login(ctx context.Context, email, password, name string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, result.NewError(result.OutcomeMissingParam)
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, result.Wrap(result.OutcomeDatabaseError, err)
	}

	isNew := false
	if u == nil {
		u, err = s.register(ctx, email, password, strings.TrimSpace(name))
		if err != nil {
			return LoginResult{}, err
		}
		isNew = true
	} else if !utils.CheckPassword(password, u.PasswordHash) {
		return LoginResult{}, result.NewError(result.OutcomePasswordIncorrect)
	}

	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil || tok == "" {
		return LoginResult{}, result.Wrapf(result.OutcomeSystemError, err, "issue token for %s", u.ID)
	}
	return LoginResult{Token: tok, IsNew: isNew, User: u.Profile()}, nil
}

func (s *UserService) register(ctx context.Context, email, password, name string) (*domain.User, error) {
	if name == "" {
		name = "user"
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, result.Wrap(result.OutcomePasswordTooWeak, err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         "user",
	}
	err = s.repo.Create(ctx, u)
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, domain.ErrDuplicate):
		// 并发注册：以先写入的那条为准，再校验一次密码
		existing, e := s.repo.FindByEmail(ctx, email)
		if e != nil {
			return nil, result.Wrap(result.OutcomeDatabaseError, e)
		}
		if existing == nil {
			// 邮箱被已封禁（软删）的账号占用
			return nil, result.Wrap(result.OutcomeUserDisabled, err)
		}
		if !utils.CheckPassword(password, existing.PasswordHash) {
			return nil, result.NewError(result.OutcomePasswordIncorrect)
		}
		return existing, nil
	default:
		return nil, result.Wrap(result.OutcomeDataCreateFailed, err)
	}
}

// Profile 读穿缓存取用户资料
func (s *UserService) Profile(ctx context.Context, id string) (domain.Profile, error) {
	if id == "" {
		return domain.Profile{}, result.NewError(result.OutcomeUnauthorized)
	}
	load := func(ctx context.Context) (*domain.Profile, error) {
		u, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, result.Wrap(result.OutcomeDatabaseError, err)
		}
		if u == nil {
			return nil, result.NewError(result.OutcomeUserNotFound)
		}
		p := u.Profile()
		return &p, nil
	}

	var (
		p   *domain.Profile
		err error
	)
	if s.cache != nil {
		p, err = s.cache.GetOrLoadProfile(ctx, id, load)
	} else {
		p, err = load(ctx)
	}
	if err != nil {
		return domain.Profile{}, err
	}
	if p == nil {
		return domain.Profile{}, result.NewError(result.OutcomeUserNotFound)
	}
	return *p, nil
}

// List 管理端分页；limit 超界时回落到 20
func (s *UserService) List(ctx context.Context, f domain.ListFilter) (Page, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	users, total, err := s.repo.List(ctx, f)
	if err != nil {
		return Page{}, result.Wrap(result.OutcomeDataQueryFailed, err)
	}
	out := Page{Total: total, Items: make([]domain.Profile, 0, len(users))}
	for i := range users {
		out.Items = append(out.Items, users[i].Profile())
	}
	return out, nil
}

// Ban 软删用户并清掉缓存
func (s *UserService) Ban(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return result.NewError(result.OutcomeMissingParam)
	}
	n, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return result.Wrap(result.OutcomeDataDeleteFailed, err)
	}
	if n == 0 {
		return result.NewError(result.OutcomeUserNotFound)
	}
	if s.cache != nil {
		if err := s.cache.DeleteProfile(ctx, id); err != nil {
			s.l.Warn("evict profile cache failed", zap.String("uid", id), zap.Error(err))
		}
	}
	return nil
}
