package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gstrex/internal/domain"
	"gstrex/internal/port"
)

const collCompanies = "companies"

type companyRepo struct {
	db *mongo.Database
}

// NewCompanyRepo creates a MongoDB-backed CompanyRepository.
func NewCompanyRepo(db *mongo.Database) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.Collection(collCompanies).FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByID: %w", err)
	}
	return &company, nil
}
