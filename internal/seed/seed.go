// Package seed inserts the starter sample data the first time an app runs
// against an empty database.
package seed

import (
	"context"

	"go.uber.org/zap"

	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// School seeds courses, teachers and students when their tables are empty.
func School(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	courseCount, err := repo.Course.Count(ctx)
	if err != nil {
		return err
	}
	if courseCount == 0 {
		courses := []model.Course{
			{Name: "Python Basics", Description: "Learn Python programming fundamentals"},
			{Name: "Web Development", Description: "HTML, CSS, JavaScript and Flask"},
			{Name: "Data Science", Description: "Data analysis with Python"},
		}
		for i := range courses {
			if err := repo.Course.Create(ctx, &courses[i]); err != nil {
				return err
			}
		}
		logger.Info("sample courses added", zap.Int("count", len(courses)))
	}

	all, err := repo.Course.List(ctx)
	if err != nil {
		return err
	}
	if len(all) < 3 {
		return nil
	}

	teacherCount, err := repo.Teacher.Count(ctx)
	if err != nil {
		return err
	}
	if teacherCount == 0 {
		teachers := []model.Teacher{
			{Name: "Dr. Sarah Johnson", Email: "sarah@school.com", Specialization: "Python Programming", CourseID: all[0].ID},
			{Name: "Prof. Mike Chen", Email: "mike@school.com", Specialization: "Full Stack Development", CourseID: all[1].ID},
			{Name: "Dr. Emily Brown", Email: "emily@school.com", Specialization: "Data Analytics", CourseID: all[2].ID},
		}
		for i := range teachers {
			if err := repo.Teacher.Create(ctx, &teachers[i]); err != nil {
				return err
			}
		}
		logger.Info("sample teachers added", zap.Int("count", len(teachers)))
	}

	studentCount, err := repo.Student.Count(ctx)
	if err != nil {
		return err
	}
	if studentCount == 0 {
		students := []model.Student{
			{Name: "Alice Smith", Email: "alice@student.com", CourseID: all[0].ID},
			{Name: "Bob Johnson", Email: "bob@student.com", CourseID: all[1].ID},
			{Name: "Charlie Davis", Email: "charlie@student.com", CourseID: all[0].ID},
			{Name: "Diana Wilson", Email: "diana@student.com", CourseID: all[2].ID},
		}
		for i := range students {
			if err := repo.Student.Create(ctx, &students[i]); err != nil {
				return err
			}
		}
		logger.Info("sample students added", zap.Int("count", len(students)))
	}

	return nil
}

// BookAPI seeds authors and books when their tables are empty.
func BookAPI(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	authorCount, err := repo.Author.Count(ctx)
	if err != nil {
		return err
	}
	if authorCount == 0 {
		authors := []model.Author{
			{Name: "Eric Matthes", City: "Anchorage", Bio: "Python educator and author"},
			{Name: "Miguel Grinberg", City: "Portland", Bio: "Flask expert and software engineer"},
			{Name: "Robert C. Martin", City: "Illinois", Bio: "Software engineer and author"},
			{Name: "J.K. Rowling", City: "London", Bio: "Author of Harry Potter series"},
			{Name: "George Orwell", City: "London", Bio: "English novelist and essayist"},
		}
		for i := range authors {
			if err := repo.Author.Create(ctx, &authors[i]); err != nil {
				return err
			}
		}
		logger.Info("sample authors added", zap.Int("count", len(authors)))
	}

	bookCount, err := repo.Book.Count(ctx)
	if err != nil {
		return err
	}
	if bookCount > 0 {
		return nil
	}

	all, err := repo.Author.List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]uint, len(all))
	for _, a := range all {
		byName[a.Name] = a.ID
	}

	books := []model.Book{
		{Title: "Python Crash Course", AuthorID: byName["Eric Matthes"], Year: intPtr(2019), ISBN: strPtr("978-1593279288")},
		{Title: "Flask Web Development", AuthorID: byName["Miguel Grinberg"], Year: intPtr(2018), ISBN: strPtr("978-1491991732")},
		{Title: "Clean Code", AuthorID: byName["Robert C. Martin"], Year: intPtr(2008), ISBN: strPtr("978-0132350884")},
		{Title: "Harry Potter and the Philosopher's Stone", AuthorID: byName["J.K. Rowling"], Year: intPtr(1997), ISBN: strPtr("978-0747532743")},
		{Title: "1984", AuthorID: byName["George Orwell"], Year: intPtr(1949), ISBN: strPtr("978-0451524935")},
		{Title: "Animal Farm", AuthorID: byName["George Orwell"], Year: intPtr(1945), ISBN: strPtr("978-0451526342")},
		{Title: "Python for Everybody", AuthorID: byName["Eric Matthes"], Year: intPtr(2016), ISBN: strPtr("978-1530051120")},
		{Title: "Flask API Development", AuthorID: byName["Miguel Grinberg"], Year: intPtr(2021), ISBN: strPtr("978-1484270894")},
	}
	added := 0
	for i := range books {
		if books[i].AuthorID == 0 {
			// the matching author is gone from a pre-existing table
			continue
		}
		if err := repo.Book.Create(ctx, &books[i]); err != nil {
			return err
		}
		added++
	}
	logger.Info("sample books added", zap.Int("count", added))

	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
