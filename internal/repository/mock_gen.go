// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./org_admin.go -destination=../mocks/mock_org_admin_repository.go -package=mocks OrgAdminRepositoryIface
//go:generate mockgen -source=./practitioner.go -destination=../mocks/mock_practitioner_repository.go -package=mocks PractitionerRepositoryIface
//go:generate mockgen -source=./org_practitioner.go -destination=../mocks/mock_org_practitioner_repository.go -package=mocks OrgPractitionerRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
