package service

import (
	"github.com/vibejam-co/jam-sub001/internal/catalog"
)

// CatalogService serves the theme and template catalog. The catalog is a
// pure function of the built-in seeds, so it is computed once.
type CatalogService struct {
	catalog catalog.Catalog
}

func NewCatalogService() *CatalogService {
	return &CatalogService{catalog: catalog.Build()}
}

func (s *CatalogService) GetCatalog() catalog.Catalog {
	return s.catalog
}
