package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-gin-result-starter/internal/domain"
	"go-gin-result-starter/internal/domain/mocks"
	"go-gin-result-starter/pkg/result"
	"go-gin-result-starter/pkg/utils"
)

type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(uid, role string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "tok-" + uid + "-" + role, nil
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := utils.HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestUserService_Login(t *testing.T) {
	existing := &domain.User{ID: "u1", Email: "a@x.io", Name: "a", Role: "user", PasswordHash: mustHash(t, "pw")}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) domain.UserRepository
		issuer   TokenIssuer
		email    string
		password string

		wantOutcome result.Outcome
		wantNew     bool
		wantUID     string
	}{
		{
			name: "已有用户，密码正确",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(existing, nil)
				return repo
			},
			email:       " A@x.io ",
			password:    "pw",
			wantOutcome: result.OutcomeSuccess,
			wantUID:     "u1",
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(existing, nil)
				return repo
			},
			email:       "a@x.io",
			password:    "bad",
			wantOutcome: result.OutcomePasswordIncorrect,
		},
		{
			name: "自动注册",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "new@x.io").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
					assert.Equal(t, "new", u.Name)
					assert.Len(t, u.ID, 32)
					assert.True(t, utils.CheckPassword("pw", u.PasswordHash))
					return nil
				})
				return repo
			},
			email:       "new@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeSuccess,
			wantNew:     true,
		},
		{
			name: "并发注册冲突后回查",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				gomock.InOrder(
					repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(nil, nil),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Wrap(domain.ErrDuplicate, "1062")),
					repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(existing, nil),
				)
				return repo
			},
			email:       "a@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeSuccess,
			wantNew:     true,
			wantUID:     "u1",
		},
		{
			name: "邮箱属于已封禁账号",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				gomock.InOrder(
					repo.EXPECT().FindByEmail(gomock.Any(), "gone@x.io").Return(nil, nil),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicate),
					repo.EXPECT().FindByEmail(gomock.Any(), "gone@x.io").Return(nil, nil),
				)
				return repo
			},
			email:       "gone@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeUserDisabled,
		},
		{
			name: "写库失败",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))
				return repo
			},
			email:       "a@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeDataCreateFailed,
		},
		{
			name: "查库失败",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(nil, errors.New("timeout"))
				return repo
			},
			email:       "a@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeDatabaseError,
		},
		{
			name: "签发失败",
			mock: func(ctrl *gomock.Controller) domain.UserRepository {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.io").Return(existing, nil)
				return repo
			},
			issuer:      fakeIssuer{err: errors.New("no key")},
			email:       "a@x.io",
			password:    "pw",
			wantOutcome: result.OutcomeSystemError,
		},
		{
			name:        "缺少参数",
			mock:        func(ctrl *gomock.Controller) domain.UserRepository { return mocks.NewMockUserRepository(ctrl) },
			email:       " ",
			password:    "pw",
			wantOutcome: result.OutcomeMissingParam,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			issuer := tc.issuer
			if issuer == nil {
				issuer = fakeIssuer{}
			}
			svc := NewUserService(tc.mock(ctrl), nil, issuer, nil)

			res, err := svc.Login(context.Background(), tc.email, tc.password, "")
			assert.Equal(t, tc.wantOutcome, result.OutcomeOf(err), "err=%v", err)
			if tc.wantOutcome != result.OutcomeSuccess {
				return
			}
			assert.Equal(t, tc.wantNew, res.IsNew)
			assert.NotEmpty(t, res.Token)
			if tc.wantUID != "" {
				assert.Equal(t, tc.wantUID, res.User.ID)
			}
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	t.Run("无缓存直接回源", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Email: "a@x.io", Role: "user"}, nil)

		p, err := NewUserService(repo, nil, fakeIssuer{}, nil).Profile(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.Profile{ID: "u1", Email: "a@x.io", Role: "user"}, p)
	})

	t.Run("缓存未命中时回源，用户不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)
		cache := mocks.NewMockProfileCache(ctrl)
		cache.EXPECT().GetOrLoadProfile(gomock.Any(), "ghost", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, load func(context.Context) (*domain.Profile, error)) (*domain.Profile, error) {
				return load(ctx)
			})

		_, err := NewUserService(repo, cache, fakeIssuer{}, nil).Profile(context.Background(), "ghost")
		assert.Equal(t, result.OutcomeUserNotFound, result.OutcomeOf(err))
	})

	t.Run("缓存命中不查库", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		cache := mocks.NewMockProfileCache(ctrl)
		cache.EXPECT().GetOrLoadProfile(gomock.Any(), "u1", gomock.Any()).Return(&domain.Profile{ID: "u1"}, nil)

		p, err := NewUserService(repo, cache, fakeIssuer{}, nil).Profile(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "u1", p.ID)
	})

	t.Run("未登录", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := NewUserService(mocks.NewMockUserRepository(ctrl), nil, fakeIssuer{}, nil).Profile(context.Background(), "")
		assert.Equal(t, result.OutcomeUnauthorized, result.OutcomeOf(err))
	})
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), domain.ListFilter{Offset: 0, Limit: 20, Keyword: "a"}).
		Return([]domain.User{{ID: "u1"}, {ID: "u2"}}, int64(42), nil)

	page, err := NewUserService(repo, nil, fakeIssuer{}, nil).
		List(context.Background(), domain.ListFilter{Offset: -3, Limit: 1000, Keyword: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), page.Total)
	assert.Len(t, page.Items, 2)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("boom"))
	_, err = NewUserService(repo, nil, fakeIssuer{}, nil).List(context.Background(), domain.ListFilter{})
	assert.Equal(t, result.OutcomeDataQueryFailed, result.OutcomeOf(err))
}

func TestUserService_Ban(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		mock func(ctrl *gomock.Controller) (domain.UserRepository, domain.ProfileCache)
		want result.Outcome
	}{
		{
			name: "成功并清缓存",
			id:   "u1",
			mock: func(ctrl *gomock.Controller) (domain.UserRepository, domain.ProfileCache) {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().SoftDelete(gomock.Any(), "u1").Return(int64(1), nil)
				cache := mocks.NewMockProfileCache(ctrl)
				cache.EXPECT().DeleteProfile(gomock.Any(), "u1").Return(errors.New("redis down"))
				return repo, cache
			},
			want: result.OutcomeSuccess,
		},
		{
			name: "不存在",
			id:   "u2",
			mock: func(ctrl *gomock.Controller) (domain.UserRepository, domain.ProfileCache) {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().SoftDelete(gomock.Any(), "u2").Return(int64(0), nil)
				return repo, nil
			},
			want: result.OutcomeUserNotFound,
		},
		{
			name: "删除失败",
			id:   "u3",
			mock: func(ctrl *gomock.Controller) (domain.UserRepository, domain.ProfileCache) {
				repo := mocks.NewMockUserRepository(ctrl)
				repo.EXPECT().SoftDelete(gomock.Any(), "u3").Return(int64(0), errors.New("lock wait"))
				return repo, nil
			},
			want: result.OutcomeDataDeleteFailed,
		},
		{
			name: "缺少 id",
			id:   "",
			mock: func(ctrl *gomock.Controller) (domain.UserRepository, domain.ProfileCache) {
				return mocks.NewMockUserRepository(ctrl), nil
			},
			want: result.OutcomeMissingParam,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo, cache := tc.mock(ctrl)
			err := NewUserService(repo, cache, fakeIssuer{}, nil).Ban(context.Background(), tc.id)
			assert.Equal(t, tc.want, result.OutcomeOf(err))
		})
	}
}
