package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/watchlist/internal/dbx"
	"github.com/dmitrijs2005/watchlist/internal/server/auth"
	"github.com/dmitrijs2005/watchlist/internal/server/models"
	"github.com/dmitrijs2005/watchlist/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/watchlist/internal/server/repositories/users"
	watchlistrepo "github.com/dmitrijs2005/watchlist/internal/server/repositories/watchlist"
	"github.com/dmitrijs2005/watchlist/internal/server/storetest"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fixture struct {
	db        *sql.DB
	users     *UserService
	watchlist *WatchlistService
	issuer    *auth.TokenIssuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := storetest.NewSQLite(t)
	rm := &repomanager.SQLiteRepositoryManager{}
	issuer := auth.NewTokenIssuer([]byte(testSecret), time.Hour)
	return &fixture{
		db:        db,
		users:     NewUserService(db, rm, auth.NewBcryptHasher(bcrypt.MinCost), issuer),
		watchlist: NewWatchlistService(db, rm),
		issuer:    issuer,
	}
}

// --- fakes for failure paths ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeWatchlistRepo struct {
	createErr error
	listOut   []*models.WatchlistEntry
	listErr   error
	deleteErr error
}

func (f *fakeWatchlistRepo) Create(ctx context.Context, userID int64, e *models.NewWatchlistEntry) (*models.WatchlistEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.WatchlistEntry{ID: 1, UserID: userID, TmdbID: e.TmdbID, Title: e.Title}, nil
}

func (f *fakeWatchlistRepo) ListByUser(ctx context.Context, userID int64) ([]*models.WatchlistEntry, error) {
	return f.listOut, f.listErr
}

func (f *fakeWatchlistRepo) DeleteByUser(ctx context.Context, userID, id int64) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	w *fakeWatchlistRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Watchlist(db dbx.DBTX) watchlistrepo.Repository { return m.w }

type fakeHasher struct {
	hashErr   error
	verifyOK  bool
	verifyErr error
	verified  []string
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) (bool, error) {
	h.verified = append(h.verified, hash)
	return h.verifyOK, h.verifyErr
}
