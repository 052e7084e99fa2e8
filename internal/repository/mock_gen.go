// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./account.go -destination=../mocks/mock_account_repository.go -package=mocks AccountRepositoryIface
//go:generate mockgen -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./volunteer.go -destination=../mocks/mock_volunteer_repository.go -package=mocks VolunteerRepositoryIface
//go:generate mockgen -source=./opportunity.go -destination=../mocks/mock_opportunity_repository.go -package=mocks OpportunityRepositoryIface
//go:generate mockgen -source=./gallery.go -destination=../mocks/mock_gallery_repository.go -package=mocks GalleryRepositoryIface
//go:generate mockgen -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
