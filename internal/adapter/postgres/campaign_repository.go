package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/errors"

	"crowdfund/internal/core/domain"
)

// SQLSTATE codes PostgreSQL reports when a transaction lost a race.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Contributions lock the campaign row, so writers to one campaign
// queue behind each other instead of aborting. Serialization failures and
// deadlocks the server still reports surface as domain.ErrConcurrency.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

type campaignRow struct {
	ID            int64  `db:"id"`
	Creator       string `db:"creator"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	GoalAmount    int64  `db:"goal_amount"`
	CurrentAmount int64  `db:"current_amount"`
	DeadlineNs    int64  `db:"deadline_ns"`
	IsActive      bool   `db:"is_active"`
	CreatedAtNs   int64  `db:"created_at_ns"`
}

func (row campaignRow) campaign() domain.Campaign {
	return domain.Campaign{
		ID:            row.ID,
		Creator:       domain.Principal(row.Creator),
		Name:          row.Name,
		Description:   row.Description,
		GoalAmount:    row.GoalAmount,
		CurrentAmount: row.CurrentAmount,
		Deadline:      time.Unix(0, row.DeadlineNs).UTC(),
		IsActive:      row.IsActive,
		CreatedAt:     time.Unix(0, row.CreatedAtNs).UTC(),
		Contributors:  map[domain.Principal]int64{},
	}
}

const selectCampaign = `SELECT id, creator, name, description, goal_amount, current_amount,
       deadline_ns, is_active, created_at_ns
  FROM campaigns`

var readOnly = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// Create validates the draft and inserts the campaign. The id comes from the
// table sequence, so a failed insert may leave a gap.
func (r *CampaignRepository) Create(ctx context.Context, draft domain.CampaignDraft, now time.Time) (domain.Campaign, error) {
	if err := draft.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	c := domain.NewCampaign(0, draft, now)
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (creator, name, description, goal_amount, current_amount, deadline_ns, is_active, created_at_ns)
VALUES ($1,$2,$3,$4,0,$5,TRUE,$6) RETURNING id`,
		c.Creator.String(), c.Name, c.Description, c.GoalAmount, c.Deadline.UnixNano(), c.CreatedAt.UnixNano(),
	).Scan(&c.ID)
	if err != nil {
		return domain.Campaign{}, mapErr(err)
	}
	return c, nil
}

// Contribute locks the campaign row, checks the contribution against the
// locked state and updates the total and the ledger entry in one
// transaction. Read committed is enough: the row lock orders writers and
// every later statement sees the state the lock holder committed.
func (r *CampaignRepository) Contribute(ctx context.Context, id int64, contributor domain.Principal, amount int64, now time.Time) (domain.Campaign, error) {
	var out domain.Campaign
	err := r.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		c, err := loadCampaign(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err = domain.CheckContribution(c, amount, now); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `UPDATE campaigns SET current_amount = current_amount + $1 WHERE id = $2`, amount, id); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO campaign_contributions (campaign_id, contributor, amount)
VALUES ($1,$2,$3)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount = campaign_contributions.amount + EXCLUDED.amount`,
			id, contributor.String(), amount)
		if err != nil {
			return err
		}
		c.Apply(contributor, amount)
		out = c
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return out, nil
}

// Get returns one campaign with its ledger read from a single snapshot.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	var out domain.Campaign
	err := r.inTx(ctx, readOnly, func(tx pgx.Tx) error {
		var err error
		out, err = loadCampaign(ctx, tx, id, false)
		return err
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return out, nil
}

// GetContribution returns the contributor's cumulative amount, or 0 when
// the campaign exists but has no entry for them.
func (r *CampaignRepository) GetContribution(ctx context.Context, id int64, contributor domain.Principal) (int64, error) {
	var amount int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(
    (SELECT amount FROM campaign_contributions WHERE campaign_id = c.id AND contributor = $2), 0)
  FROM campaigns c WHERE c.id = $1`, id, contributor.String()).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, notFound(id)
	}
	if err != nil {
		return 0, mapErr(err)
	}
	return amount, nil
}

// ListAll returns every campaign ordered by id, read from a single snapshot.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := r.inTx(ctx, readOnly, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectCampaign+` ORDER BY id`)
		if err != nil {
			return err
		}
		campaignRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[campaignRow])
		if err != nil {
			return err
		}
		out = make([]domain.Campaign, 0, len(campaignRows))
		byID := make(map[int64]int, len(campaignRows))
		for i, row := range campaignRows {
			out = append(out, row.campaign())
			byID[row.ID] = i
		}

		rows, err = tx.Query(ctx, `SELECT campaign_id, contributor, amount FROM campaign_contributions`)
		if err != nil {
			return err
		}
		var (
			campaignID  int64
			contributor string
			amount      int64
		)
		_, err = pgx.ForEachRow(rows, []any{&campaignID, &contributor, &amount}, func() error {
			if i, ok := byID[campaignID]; ok {
				out[i].Contributors[domain.Principal(contributor)] = amount
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadCampaign reads the campaign and its ledger inside tx. With forUpdate
// the campaign row stays locked until tx ends.
func loadCampaign(ctx context.Context, tx pgx.Tx, id int64, forUpdate bool) (domain.Campaign, error) {
	query := selectCampaign + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := tx.Query(ctx, query, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[campaignRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, notFound(id)
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	c := row.campaign()

	rows, err = tx.Query(ctx, `SELECT contributor, amount FROM campaign_contributions WHERE campaign_id = $1`, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	var (
		contributor string
		amount      int64
	)
	_, err = pgx.ForEachRow(rows, []any{&contributor, &amount}, func() error {
		c.Contributors[domain.Principal(contributor)] = amount
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// inTx runs fn in a transaction with opts. Any error rolls the transaction
// back; a failed commit is reported like any other error.
func (r *CampaignRepository) inTx(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return mapErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(tx); err != nil {
		return mapErr(err)
	}
	return mapErr(tx.Commit(ctx))
}

// mapErr translates driver errors into domain errors. Domain errors pass
// through untouched.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s", domain.ErrConcurrency, pgErr.Message)
		}
	}
	if isDomainError(err) {
		return err
	}
	return errors.Annotate(err, "postgres")
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrCampaignClosed,
		domain.ErrConcurrency,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
}
