package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == 0 {
		m.nextID++
		course.ID = m.nextID
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
	courses  *mockCourseRepo
}

func newMockStudentRepo(courses *mockCourseRepo) *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student), courses: courses}
}

func (m *mockStudentRepo) withCourse(s *model.Student) *model.Student {
	cp := *s
	if c, ok := m.courses.courses[cp.CourseID]; ok {
		cp.Course = c
	}
	return &cp
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		m.nextID++
		student.ID = m.nextID
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return m.withCourse(s), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return m.withCourse(s), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, search string) ([]model.Student, error) {
	needle := strings.ToLower(search)
	var result []model.Student
	for _, s := range m.students {
		row := m.withCourse(s)
		if needle != "" {
			courseName := ""
			if row.Course != nil {
				courseName = row.Course.Name
			}
			if !strings.Contains(strings.ToLower(row.Name), needle) &&
				!strings.Contains(strings.ToLower(row.Email), needle) &&
				!strings.Contains(strings.ToLower(courseName), needle) {
				continue
			}
		}
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *student
	cp.Course = nil
	m.students[student.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[uint]*model.Teacher
	nextID   uint
	courses  *mockCourseRepo
}

func newMockTeacherRepo(courses *mockCourseRepo) *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[uint]*model.Teacher), courses: courses}
}

func (m *mockTeacherRepo) withCourse(t *model.Teacher) *model.Teacher {
	cp := *t
	if c, ok := m.courses.courses[cp.CourseID]; ok {
		cp.Course = c
	}
	return &cp
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.ID == 0 {
		m.nextID++
		teacher.ID = m.nextID
	}
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return m.withCourse(t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.Email == email {
			return m.withCourse(t), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	result := make([]model.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		result = append(result, *m.withCourse(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	if _, ok := m.teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *teacher
	cp.Course = nil
	m.teachers[teacher.ID] = &cp
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id uint) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.teachers)), nil
}

// ── Mock AuthorRepository ──

type mockAuthorRepo struct {
	authors map[uint]*model.Author
	nextID  uint
	books   *mockBookRepo
}

func (m *mockAuthorRepo) withBooks(a *model.Author) *model.Author {
	cp := *a
	cp.Books = nil
	for _, b := range m.books.books {
		if b.AuthorID == cp.ID {
			cp.Books = append(cp.Books, *b)
		}
	}
	sort.Slice(cp.Books, func(i, j int) bool { return cp.Books[i].ID < cp.Books[j].ID })
	return &cp
}

func (m *mockAuthorRepo) Create(_ context.Context, author *model.Author) error {
	if author.ID == 0 {
		m.nextID++
		author.ID = m.nextID
	}
	m.authors[author.ID] = author
	return nil
}

func (m *mockAuthorRepo) GetByID(_ context.Context, id uint) (*model.Author, error) {
	if a, ok := m.authors[id]; ok {
		return m.withBooks(a), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthorRepo) List(_ context.Context) ([]model.Author, error) {
	result := make([]model.Author, 0, len(m.authors))
	for _, a := range m.authors {
		result = append(result, *m.withBooks(a))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAuthorRepo) Update(_ context.Context, author *model.Author) error {
	if _, ok := m.authors[author.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *author
	cp.Books = nil
	m.authors[author.ID] = &cp
	return nil
}

// Delete mirrors the store's ON DELETE CASCADE: the author's books go too.
func (m *mockAuthorRepo) Delete(_ context.Context, id uint) error {
	delete(m.authors, id)
	for bid, b := range m.books.books {
		if b.AuthorID == id {
			delete(m.books.books, bid)
		}
	}
	return nil
}

func (m *mockAuthorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.authors)), nil
}

// ── Mock BookRepository ──

type mockBookRepo struct {
	books   map[uint]*model.Book
	nextID  uint
	authors *mockAuthorRepo
}

// newMockBookStore builds the linked author and book mocks.
func newMockBookStore() (*mockAuthorRepo, *mockBookRepo) {
	authors := &mockAuthorRepo{authors: make(map[uint]*model.Author)}
	books := &mockBookRepo{books: make(map[uint]*model.Book)}
	authors.books = books
	books.authors = authors
	return authors, books
}

func (m *mockBookRepo) withAuthor(b *model.Book) *model.Book {
	cp := *b
	if a, ok := m.authors.authors[cp.AuthorID]; ok {
		cp.Author = a
	}
	return &cp
}

func (m *mockBookRepo) sorted(sortField, order string) []model.Book {
	result := make([]model.Book, 0, len(m.books))
	for _, b := range m.books {
		result = append(result, *m.withAuthor(b))
	}

	less := func(i, j int) bool { return result[i].ID < result[j].ID }
	switch sortField {
	case "title":
		less = func(i, j int) bool { return result[i].Title < result[j].Title }
	case "year":
		less = func(i, j int) bool { return yearOf(result[i]) < yearOf(result[j]) }
	case "created_at":
		less = func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) }
	}
	if order == "desc" {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.Slice(result, less)
	return result
}

func yearOf(b model.Book) int {
	if b.Year == nil {
		return 0
	}
	return *b.Year
}

func (m *mockBookRepo) Create(_ context.Context, book *model.Book) error {
	if book.ID == 0 {
		m.nextID++
		book.ID = m.nextID
	}
	cp := *book
	cp.Author = nil
	m.books[book.ID] = &cp
	return nil
}

func (m *mockBookRepo) GetByID(_ context.Context, id uint) (*model.Book, error) {
	if b, ok := m.books[id]; ok {
		return m.withAuthor(b), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	for _, b := range m.books {
		if b.ISBN != nil && *b.ISBN == isbn {
			return m.withAuthor(b), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookRepo) List(_ context.Context, q *dto.PageQuery) ([]model.Book, int64, error) {
	all := m.sorted(q.Sort, q.Order)
	total := int64(len(all))

	start := q.Offset()
	if start >= len(all) {
		return []model.Book{}, total, nil
	}
	end := start + q.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *mockBookRepo) ListSorted(_ context.Context, sortField, order string) ([]model.Book, error) {
	return m.sorted(sortField, order), nil
}

func (m *mockBookRepo) Search(_ context.Context, title, authorName string) ([]model.Book, error) {
	titleNeedle := strings.ToLower(title)
	authorNeedle := strings.ToLower(authorName)

	var result []model.Book
	for _, b := range m.sorted("id", "asc") {
		if titleNeedle != "" && !strings.Contains(strings.ToLower(b.Title), titleNeedle) {
			continue
		}
		if authorNeedle != "" {
			name := ""
			if b.Author != nil {
				name = b.Author.Name
			}
			if !strings.Contains(strings.ToLower(name), authorNeedle) {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

func (m *mockBookRepo) Update(_ context.Context, book *model.Book) error {
	if _, ok := m.books[book.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *book
	cp.Author = nil
	m.books[book.ID] = &cp
	return nil
}

func (m *mockBookRepo) Delete(_ context.Context, id uint) error {
	delete(m.books, id)
	return nil
}

func (m *mockBookRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.books)), nil
}

func (m *mockBookRepo) CountByAuthor(_ context.Context, authorID uint) (int64, error) {
	var n int64
	for _, b := range m.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

// ── Mock ProductRepository ──

type mockProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]*model.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, product *model.Product) error {
	if product.ID == 0 {
		m.nextID++
		product.ID = m.nextID
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id uint) (*model.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) List(_ context.Context, search string) ([]model.Product, error) {
	needle := strings.ToLower(search)
	var result []model.Product
	for _, p := range m.products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProductRepo) Update(_ context.Context, product *model.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uint) error {
	delete(m.products, id)
	return nil
}

// ── shared setup ──

// mockRepos bundles every mock plus the aggregate the services consume.
type mockRepos struct {
	repo     *repository.Repository
	courses  *mockCourseRepo
	students *mockStudentRepo
	teachers *mockTeacherRepo
	authors  *mockAuthorRepo
	books    *mockBookRepo
	products *mockProductRepo
}

func newMockRepos() *mockRepos {
	authors, books := newMockBookStore()
	courses := newMockCourseRepo()
	students := newMockStudentRepo(courses)
	teachers := newMockTeacherRepo(courses)
	products := newMockProductRepo()

	return &mockRepos{
		repo: &repository.Repository{
			Course:  courses,
			Student: students,
			Teacher: teachers,
			Author:  authors,
			Book:    books,
			Product: products,
		},
		courses:  courses,
		students: students,
		teachers: teachers,
		authors:  authors,
		books:    books,
		products: products,
	}
}
