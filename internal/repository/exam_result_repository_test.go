package repository

import (
	"testing"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestCreateAttemptReservesNextSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExamResultRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `exam_results` WHERE \\(student_id = \\? AND quiz_id = \\?\\).*FOR UPDATE").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectExec("INSERT INTO `exam_results`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := &model.ExamResult{
		StudentID:      1,
		QuizID:         2,
		Score:          80,
		CorrectCount:   4,
		TotalQuestions: 5,
		Passed:         true,
	}
	err := repo.CreateAttempt(result, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.AttemptNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttemptRejectsWhenExhausted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExamResultRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `exam_results` WHERE \\(student_id = \\? AND quiz_id = \\?\\).*FOR UPDATE").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectRollback()

	result := &model.ExamResult{StudentID: 1, QuizID: 2}
	err := repo.CreateAttempt(result, 3)

	assert.ErrorIs(t, err, util.ErrAttemptsExhausted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttemptRetriesOnDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExamResultRepository(db)

	// Loser of the reservation race: the insert hits the uq_attempt index,
	// the whole transaction is retried once against the fresh count.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `exam_results` WHERE \\(student_id = \\? AND quiz_id = \\?\\).*FOR UPDATE").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `exam_results`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-2-1' for key 'uq_attempt'"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `exam_results` WHERE \\(student_id = \\? AND quiz_id = \\?\\).*FOR UPDATE").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectExec("INSERT INTO `exam_results`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := &model.ExamResult{StudentID: 1, QuizID: 2}
	err := repo.CreateAttempt(result, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.AttemptNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateAttempt(t *testing.T) {
	assert.True(t, isDuplicateAttempt(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.False(t, isDuplicateAttempt(&mysql.MySQLError{Number: 1064, Message: "syntax error"}))
	assert.False(t, isDuplicateAttempt(nil))
	assert.False(t, isDuplicateAttempt(assert.AnError))
}
