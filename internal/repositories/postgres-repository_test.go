package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"epi-tracker/internal/entities"
	"epi-tracker/pkg/database/postgresql"
	apperrors "epi-tracker/pkg/errors"
)

// testPool открывает тестовую БД из TEST_DATABASE_URL, применяет миграции и очищает таблицы.
// Без переменной окружения интеграционные тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, интеграционные тесты PostgreSQL пропущены")
	}

	ctx := context.Background()
	pool, err := postgresql.ConnectDB(ctx, dsn, zap.NewNop())
	require.NoError(t, err, "Не удалось подключиться к тестовой БД")
	t.Cleanup(pool.Close)

	require.NoError(t, postgresql.Migrate(ctx, pool), "Не удалось применить миграции")

	_, err = pool.Exec(ctx, `TRUNCATE TABLE deliveries, epis, employees RESTART IDENTITY`)
	require.NoError(t, err, "Не удалось очистить таблицы")
	return pool
}

func TestEmployeeRepository_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(pool, zap.NewNop())

	reg := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, entities.Employee{
		Name: "João Silva", CPF: "123.456.789-00", Sector: "Produção",
		Position: "Operador de Máquina", Status: "active", RegistrationDate: reg,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, reg.Equal(created.RegistrationDate))

	created.Sector = "Manutenção"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Manutenção", updated.Sector)

	found, err := repo.Search(ctx, "manut")
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrNotFound)
}

func TestEPIRepository_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewEPIRepository(pool, zap.NewNop())

	exp := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, entities.EPI{
		Name: "Luvas de Látex", Code: "LUV001", Category: "Proteção das Mãos",
		Quantity: 5, MinQuantity: 20, UnitPrice: decimal.RequireFromString("15.50"),
		HasExpiration: true, ExpirationDate: &exp, Status: "active",
		RegistrationDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "15.50", created.UnitPrice.StringFixed(2))
	require.NotNil(t, created.ExpirationDate)
	assert.True(t, exp.Equal(*created.ExpirationDate))

	_, err = repo.Create(ctx, entities.EPI{Name: "Дубль", Code: "LUV001", Category: "Proteção das Mãos", Status: "active"})
	assert.True(t, apperrors.IsValidation(err), "уникальность кода проверяет база")

	byCode, err := repo.FindByCode(ctx, "luv001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	list, err := repo.Search(ctx, "látex")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	underscored, err := repo.Create(ctx, entities.EPI{
		Name: "Protetor auricular", Code: "PROT_01", Category: "Proteção Auditiva",
		Status: "active", RegistrationDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// "_" и "%" ищутся как обычные символы, как в памяти.
	literal, err := repo.Search(ctx, "_")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, underscored.ID, literal[0].ID)

	none, err := repo.Search(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, none)
	require.NoError(t, repo.Delete(ctx, underscored.ID))

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByCode(ctx, "LUV001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeliveryRepository_Integration_NewestFirst(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewDeliveryRepository(pool, zap.NewNop())

	obs := "Primeira entrega"
	for i, name := range []string{"João Silva", "Maria Santos"} {
		_, err := repo.Create(ctx, entities.Delivery{
			EmployeeID: uint64(i + 1), EmployeeName: name, EPIID: 1, EPIName: "Capacete",
			Quantity: 1, DeliveryDate: time.Date(2024, time.May, 20+i, 0, 0, 0, 0, time.UTC),
			ResponsiblePerson: "Carlos Supervisor", Status: "delivered", Observations: &obs,
		})
		require.NoError(t, err)
	}

	list, err := repo.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maria Santos", list[0].EmployeeName)
	require.NotNil(t, list[1].Observations)
	assert.Equal(t, obs, *list[1].Observations)
	assert.Nil(t, list[1].ExpirationDate)
}
