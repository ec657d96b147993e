package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-hoops/external/yahoo"
	qb "github.com/riskibarqy/fantasy-hoops/internal/platform/querybuilder"
)

const oauthProviderYahoo = "yahoo"

// OAuthTokenRepository persists the rotated provider grant, one row per
// provider. The provider rotates refresh tokens on every exchange, so a
// lost rotation locks the account out until manual re-authorization.
type OAuthTokenRepository struct {
	db *sqlx.DB
}

func NewOAuthTokenRepository(db *sqlx.DB) *OAuthTokenRepository {
	return &OAuthTokenRepository{db: db}
}

func (r *OAuthTokenRepository) Load(ctx context.Context) (yahoo.Token, bool, error) {
	query, args, err := qb.Select("*").From("oauth_tokens").
		Where(qb.Eq("provider", oauthProviderYahoo)).
		Limit(1).
		ToSQL()
	if err != nil {
		return yahoo.Token{}, false, fmt.Errorf("build select oauth token query: %w", err)
	}

	var row oauthTokenTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return yahoo.Token{}, false, nil
		}
		return yahoo.Token{}, false, fmt.Errorf("select oauth token: %w", err)
	}

	return yahoo.Token{
		AccessToken:  row.AccessToken,
		RefreshToken: row.RefreshToken,
		ExpiresAt:    row.ExpiresAt,
	}, true, nil
}

func (r *OAuthTokenRepository) Save(ctx context.Context, token yahoo.Token) error {
	model := oauthTokenInsertModel{
		Provider:     oauthProviderYahoo,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt.UTC(),
	}

	query, args, err := qb.InsertModel("oauth_tokens", model, `ON CONFLICT (provider)
DO UPDATE SET
    access_token = EXCLUDED.access_token,
    refresh_token = EXCLUDED.refresh_token,
    expires_at = EXCLUDED.expires_at,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert oauth token query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert oauth token provider=%s: %w", oauthProviderYahoo, err)
	}

	return nil
}
