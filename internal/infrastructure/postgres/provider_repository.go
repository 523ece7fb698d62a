package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/linkbi-api/internal/domain"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, nom, domaine, ville, description, telephone,
	email, prix, site_web, linkedin, twitter, instagram, facebook,
	photos, note, statut, created_at, updated_at`

// ProviderRepo implementación de ProviderRepository (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create inserta el registro; id y timestamps los asigna la base.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	if p.Statut == "" {
		p.Statut = moderation.Initial
	}
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	query := `
		INSERT INTO prestataires (nom, domaine, ville, description, telephone,
			email, prix, site_web, linkedin, twitter, instagram, facebook,
			photos, note, statut)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.Nom, p.Domaine, p.Ville, p.Description, p.Telephone,
		p.Email, p.Prix, p.SiteWeb, p.Linkedin, p.Twitter, p.Instagram, p.Facebook,
		photos, toNullDecimal(p.Note), string(p.Statut),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert prestataire: %w", err)
	}
	p.Photos = photos
	return nil
}

// FindMany lista con filtro de estado opcional y orden explícito (NULLS LAST fijado, no el default de PostgreSQL).
func (r *ProviderRepo) FindMany(ctx context.Context, q repository.ProviderQuery) ([]*entity.Provider, error) {
	query, args := buildFindMany(q)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prestataires: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prestataire: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prestataires: %w", err)
	}
	return list, nil
}

// FindByID obtiene un registro por id.
func (r *ProviderRepo) FindByID(ctx context.Context, id int64) (*entity.Provider, error) {
	row := r.q.QueryRow(ctx, `SELECT `+providerColumns+` FROM prestataires WHERE id = $1`, id)
	p, err := scanProvider(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get prestataire: %w", err)
	}
	return p, nil
}

// UpdateStatus actualiza solo statut y updated_at (last-write-wins, sin bloqueo optimista).
func (r *ProviderRepo) UpdateStatus(ctx context.Context, id int64, status moderation.Status) (*entity.Provider, error) {
	query := `
		UPDATE prestataires SET statut = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + providerColumns
	p, err := scanProvider(r.q.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update statut: %w", err)
	}
	return p, nil
}

// Delete borrado físico por id.
func (r *ProviderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM prestataires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prestataire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildFindMany(q repository.ProviderQuery) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + providerColumns + ` FROM prestataires`)
	if q.Status != nil {
		args = append(args, string(*q.Status))
		sb.WriteString(` WHERE statut = $1`)
	}
	switch q.Order {
	case repository.OrderByCreatedDesc:
		sb.WriteString(` ORDER BY created_at DESC, id DESC`)
	default:
		sb.WriteString(` ORDER BY note DESC NULLS LAST, id ASC`)
	}
	return sb.String(), args
}

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var (
		p      entity.Provider
		note   decimal.NullDecimal
		statut string
	)
	err := row.Scan(
		&p.ID, &p.Nom, &p.Domaine, &p.Ville, &p.Description, &p.Telephone,
		&p.Email, &p.Prix, &p.SiteWeb, &p.Linkedin, &p.Twitter, &p.Instagram, &p.Facebook,
		&p.Photos, &note, &statut, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if note.Valid {
		n := note.Decimal
		p.Note = &n
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}
	p.Statut = moderation.Status(statut)
	return &p, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
