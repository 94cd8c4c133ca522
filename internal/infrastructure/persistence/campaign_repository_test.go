package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockCampaignRepository(t *testing.T) (*GormCampaignRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCampaignRepository(gormDB), mock, mockDB
}

func campaignRows(id, shopID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "shop_id", "name", "theme", "offer", "budget",
		"start_date", "end_date", "status", "scans", "redemptions", "brief_fingerprint",
	}).AddRow(
		id, shopID, "Diwali Dhamaka Campaign", "Diwali Dhamaka", "20% off on all sweets", "1000",
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		"active", int64(3), int64(1), "abc123",
	)
}

func TestGormCampaignRepository_FindByIDForShop(t *testing.T) {
	t.Run("finds campaign owned by shop", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()
		shopID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE shop_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(shopID, campaignID, 1).
			WillReturnRows(campaignRows(campaignID, shopID))

		c, err := repo.FindByIDForShop(context.Background(), shopID, campaignID)

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, campaignID, c.ID)
		assert.Equal(t, shopID, c.ShopID)
		assert.Equal(t, "Diwali Dhamaka Campaign", c.Name)
		assert.Equal(t, int64(3), c.Scans)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for another shop's campaign", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()
		shopID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE shop_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(shopID, campaignID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByIDForShop(context.Background(), shopID, campaignID)

		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCampaignRepository_FindByFingerprint(t *testing.T) {
	t.Run("finds the committed campaign for a brief", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()
		shopID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE shop_id = \$1 AND brief_fingerprint = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(shopID, "abc123", 1).
			WillReturnRows(campaignRows(campaignID, shopID))

		c, err := repo.FindByFingerprint(context.Background(), shopID, "abc123")

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "abc123", c.BriefFingerprint)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCampaignRepository_FindAllForShop(t *testing.T) {
	t.Run("returns shop-scoped page with total", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()
		shopID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "campaigns" WHERE shop_id = \$1`).
			WithArgs(shopID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE shop_id = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(shopID, 20).
			WillReturnRows(campaignRows(campaignID, shopID))

		campaigns, total, err := repo.FindAllForShop(context.Background(), shopID, shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, campaigns, 1)
		assert.Equal(t, campaignID, campaigns[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when shop has no campaigns", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		shopID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "campaigns" WHERE shop_id = \$1`).
			WithArgs(shopID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE shop_id = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(shopID, 20).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		campaigns, total, err := repo.FindAllForShop(context.Background(), shopID, shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, campaigns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCampaignRepository_IncrementScans(t *testing.T) {
	t.Run("bumps the counter atomically", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()

		mock.ExpectExec(`UPDATE "campaigns" SET "scans"=scans \+ 1.* WHERE id = \$\d`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.IncrementScans(context.Background(), campaignID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		campaignID := uuid.New()

		mock.ExpectExec(`UPDATE "campaigns" SET "scans"=scans \+ 1.* WHERE id = \$\d`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.IncrementScans(context.Background(), campaignID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func newMockRedemptionCodeRepository(t *testing.T) (*GormRedemptionCodeRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormRedemptionCodeRepository(gormDB), mock, mockDB
}

func TestGormRedemptionCodeRepository_Redeem(t *testing.T) {
	t.Run("consumes an unredeemed code", func(t *testing.T) {
		repo, mock, mockDB := newMockRedemptionCodeRepository(t)
		defer mockDB.Close()

		codeID := uuid.New()
		campaignID := uuid.New()
		redeemedAt := time.Date(2026, 10, 25, 12, 0, 0, 0, time.UTC)

		mock.ExpectExec(`UPDATE "redemption_codes" SET .* WHERE code = \$\d AND redeemed_at IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows := sqlmock.NewRows([]string{"id", "campaign_id", "code", "valid_until", "redeemed_at"}).
			AddRow(codeID, campaignID, "CODE-A1B2C3",
				time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC), redeemedAt)

		mock.ExpectQuery(`SELECT \* FROM "redemption_codes" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("CODE-A1B2C3", 1).
			WillReturnRows(rows)

		code, err := repo.Redeem(context.Background(), "CODE-A1B2C3", redeemedAt)

		assert.NoError(t, err)
		require.NotNil(t, code)
		assert.True(t, code.IsRedeemed())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an already redeemed code", func(t *testing.T) {
		repo, mock, mockDB := newMockRedemptionCodeRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "redemption_codes" SET .* WHERE code = \$\d AND redeemed_at IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		code, err := repo.Redeem(context.Background(), "CODE-USED99", time.Now())

		assert.Nil(t, code)
		assert.ErrorIs(t, err, campaign.ErrCodeAlreadyRedeemed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func committedCampaignFixture(t *testing.T) (*campaign.Campaign, []*campaign.TrackerLink) {
	brief := campaign.Brief{
		Theme:     "Diwali Dhamaka",
		Offer:     "20% off on all sweets",
		Budget:    decimal.NewFromInt(1000),
		StartDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
	}
	c, err := campaign.NewCampaign(uuid.New(), brief, "abc123")
	require.NoError(t, err)

	mainLink, err := campaign.NewTrackerLink(c.ID, campaign.TrackerChannelMain)
	require.NoError(t, err)
	waLink, err := campaign.NewTrackerLink(c.ID, campaign.TrackerChannelWhatsApp)
	require.NoError(t, err)

	return c, []*campaign.TrackerLink{mainLink, waLink}
}

func TestGormCampaignRepository_CreateWithLinks(t *testing.T) {
	t.Run("commits the campaign and both links in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		c, links := committedCampaignFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "campaigns"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "tracker_links"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "tracker_links"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithLinks(context.Background(), c, links)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls the campaign back when a link insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		c, links := committedCampaignFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "campaigns"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "tracker_links"`).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.CreateWithLinks(context.Background(), c, links)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a duplicate fingerprint to ErrAlreadyExists", func(t *testing.T) {
		repo, mock, mockDB := newMockCampaignRepository(t)
		defer mockDB.Close()

		c, links := committedCampaignFixture(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "campaigns"`).WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		err := repo.CreateWithLinks(context.Background(), c, links)

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
