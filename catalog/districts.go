package catalog

import "fitapp/models"

// DistrictRepository serves the selectable district list.
type DistrictRepository interface {
	ListDistricts() []models.District
}

// MemoryDistrictRepo is the seeded in-memory district repository.
type MemoryDistrictRepo struct {
	districts []models.District
}

func NewMemoryDistrictRepo() *MemoryDistrictRepo {
	return &MemoryDistrictRepo{
		districts: []models.District{
			{City: "台北市", Name: "大安區"},
			{City: "台北市", Name: "信義區"},
			{City: "台北市", Name: "中正區"},
			{City: "台北市", Name: "松山區"},
			{City: "台北市", Name: "內湖區"},
			{City: "台北市", Name: "中山區"},
			{City: "新北市", Name: "板橋區"},
			{City: "新北市", Name: "永和區"},
		},
	}
}

func (r *MemoryDistrictRepo) ListDistricts() []models.District {
	out := make([]models.District, len(r.districts))
	copy(out, r.districts)
	return out
}
