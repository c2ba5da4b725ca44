// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./parse_run.go -destination=../mocks/mock_parse_run_repository.go -package=mocks ParseRunRepositoryIface
