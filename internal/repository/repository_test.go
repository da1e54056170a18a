package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/qawatake/fixify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dbstarter/config"
	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
	"dbstarter/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

// newTestDB opens a fresh sqlite file and applies the app's migrations.
func newTestDB(t *testing.T, app string) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), app+".db")}
	db, err := database.NewDB(cfg, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.RunMigrations(sqlDB, app, zap.NewNop()))
	return db
}

// ── fixture models ──

func authorFixture(name string) *fixify.Model[model.Author] {
	return fixify.NewModel(&model.Author{Name: name})
}

func bookFixture(title string, year int, isbn string) *fixify.Model[model.Book] {
	book := &model.Book{Title: title, Year: &year}
	if isbn != "" {
		book.ISBN = &isbn
	}
	return fixify.NewModel(book,
		fixify.ConnectorFunc(func(_ testing.TB, book *model.Book, author *model.Author) {
			book.AuthorID = author.ID
		}),
	)
}

func courseFixture(name string) *fixify.Model[model.Course] {
	return fixify.NewModel(&model.Course{Name: name})
}

func studentFixture(name, email string) *fixify.Model[model.Student] {
	return fixify.NewModel(&model.Student{Name: name, Email: email},
		fixify.ConnectorFunc(func(_ testing.TB, student *model.Student, course *model.Course) {
			student.CourseID = course.ID
		}),
	)
}

// apply inserts the fixture tree top-down.
func apply(t *testing.T, db *gorm.DB, models ...fixify.IModel) {
	t.Helper()
	fixify.New(t, models...).Apply(func(m any) error {
		return db.Create(m).Error
	})
}

// ═══════════════════════════════════════════════════════════
// Book store
// ═══════════════════════════════════════════════════════════

func TestAuthorRepo_Delete_CascadesToBooks(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	var orwell *fixify.Model[model.Author]
	apply(t, db,
		authorFixture("George Orwell").Bind(&orwell).With(
			bookFixture("1984", 1949, "978-0451524935"),
			bookFixture("Animal Farm", 1945, "978-0451526342"),
		),
	)

	n, err := repo.Book.CountByAuthor(ctx, orwell.Value().ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, repo.Author.Delete(ctx, orwell.Value().ID))

	n, err = repo.Book.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "deleting the author must cascade to its books")
}

func TestBookRepo_UniqueISBN(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	var author *fixify.Model[model.Author]
	apply(t, db,
		authorFixture("Eric Matthes").Bind(&author).With(
			bookFixture("Python Crash Course", 2019, "978-1593279288"),
		),
	)

	isbn := "978-1593279288"
	dup := &model.Book{Title: "Copycat", AuthorID: author.Value().ID, ISBN: &isbn}
	assert.Error(t, repo.Book.Create(ctx, dup), "duplicate ISBN must be rejected by the store")

	// NULL ISBNs never collide
	a := &model.Book{Title: "Draft A", AuthorID: author.Value().ID}
	b := &model.Book{Title: "Draft B", AuthorID: author.Value().ID}
	assert.NoError(t, repo.Book.Create(ctx, a))
	assert.NoError(t, repo.Book.Create(ctx, b))
}

func TestBookRepo_List_PaginatesAndSorts(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	apply(t, db,
		authorFixture("George Orwell").With(
			bookFixture("1984", 1949, ""),
			bookFixture("Animal Farm", 1945, ""),
			bookFixture("Homage to Catalonia", 1938, ""),
		),
	)

	q := &dto.PageQuery{Page: 1, PerPage: 2, Sort: "year", Order: "desc"}
	books, total, err := repo.Book.List(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, books, 2)
	assert.Equal(t, "1984", books[0].Title)
	require.NotNil(t, books[0].Author, "list must preload the author")
	assert.Equal(t, "George Orwell", books[0].Author.Name)

	// out-of-range page: empty, not an error
	q = &dto.PageQuery{Page: 5, PerPage: 2}
	books, total, err = repo.Book.List(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, books)
}

func TestBookRepo_List_SortFallsBackToID(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	apply(t, db,
		authorFixture("George Orwell").With(
			bookFixture("Zebra", 2001, ""),
			bookFixture("Apple", 2002, ""),
		),
	)

	books, err := repo.Book.ListSorted(ctx, "isbn; DROP TABLE books", "asc")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Zebra", books[0].Title, "unknown sort field must fall back to id order")
}

func TestBookRepo_Search_JoinsAuthorName(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	apply(t, db,
		authorFixture("George Orwell").With(
			bookFixture("1984", 1949, ""),
			bookFixture("Animal Farm", 1945, ""),
		),
		authorFixture("Eric Matthes").With(
			bookFixture("Python Crash Course", 2019, ""),
		),
	)

	books, err := repo.Book.Search(ctx, "", "ORWELL")
	require.NoError(t, err)
	assert.Len(t, books, 2, "author search must be case-insensitive")

	books, err = repo.Book.Search(ctx, "farm", "orwell")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Animal Farm", books[0].Title)

	books, err = repo.Book.Search(ctx, "farm", "matthes")
	require.NoError(t, err)
	assert.Empty(t, books, "filters are conjunctive")
}

func TestAuthorRepo_GetByID_PreloadsBooks(t *testing.T) {
	db := newTestDB(t, "bookapi")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	var orwell *fixify.Model[model.Author]
	apply(t, db,
		authorFixture("George Orwell").Bind(&orwell).With(
			bookFixture("1984", 1949, ""),
		),
	)

	author, err := repo.Author.GetByID(ctx, orwell.Value().ID)
	require.NoError(t, err)
	require.Len(t, author.Books, 1)
	assert.Equal(t, "1984", author.Books[0].Title)

	// update through Save must not duplicate the preloaded books
	author.City = "London"
	require.NoError(t, repo.Author.Update(ctx, author))

	n, err := repo.Book.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

// ═══════════════════════════════════════════════════════════
// School store
// ═══════════════════════════════════════════════════════════

func TestStudentRepo_UniqueEmail(t *testing.T) {
	db := newTestDB(t, "school")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	var course *fixify.Model[model.Course]
	apply(t, db,
		courseFixture("Python Basics").Bind(&course).With(
			studentFixture("Alice", "alice@student.com"),
		),
	)

	dup := &model.Student{Name: "Impostor", Email: "alice@student.com", CourseID: course.Value().ID}
	assert.Error(t, repo.Student.Create(ctx, dup), "duplicate email must be rejected by the store")
}

func TestStudentRepo_List_SearchAcrossJoin(t *testing.T) {
	db := newTestDB(t, "school")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	apply(t, db,
		courseFixture("Python Basics").With(
			studentFixture("Alice Smith", "alice@student.com"),
		),
		courseFixture("Web Development").With(
			studentFixture("Bob Johnson", "bob@student.com"),
		),
	)

	students, err := repo.Student.List(ctx, "PYTHON")
	require.NoError(t, err)
	require.Len(t, students, 1, "search must match the joined course name case-insensitively")
	assert.Equal(t, "Alice Smith", students[0].Name)
	require.NotNil(t, students[0].Course)
	assert.Equal(t, "Python Basics", students[0].Course.Name)

	students, err = repo.Student.List(ctx, "bob@")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Bob Johnson", students[0].Name)

	students, err = repo.Student.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

// ═══════════════════════════════════════════════════════════
// Inventory store
// ═══════════════════════════════════════════════════════════

func TestProductRepo_CRUDAndSearch(t *testing.T) {
	db := newTestDB(t, "inventory")
	repo := repository.NewRepository(db)
	ctx := context.Background()

	laptop := &model.Product{Name: "Laptop", Quantity: 2, Price: 999.50}
	mouse := &model.Product{Name: "Wireless Mouse", Quantity: 10, Price: 25}
	require.NoError(t, repo.Product.Create(ctx, laptop))
	require.NoError(t, repo.Product.Create(ctx, mouse))

	products, err := repo.Product.List(ctx, "MOUSE")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Mouse", products[0].Name)

	laptop.Quantity = 5
	require.NoError(t, repo.Product.Update(ctx, laptop))
	got, err := repo.Product.GetByID(ctx, laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)

	require.NoError(t, repo.Product.Delete(ctx, laptop.ID))
	products, err = repo.Product.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
