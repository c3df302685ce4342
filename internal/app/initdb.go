package app

import (
	"go.uber.org/zap"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
)

const (
	defaultAdminEmail    = "admin@serviceapp.local"
	defaultAdminPassword = "serviceapp"
)

// checkAdminUser ensures a default account exists so a fresh install can log
// in. The password is stored hashed like any registered account.
func (a *Application) checkAdminUser() {
	created, err := a.authsrv.EnsureUser("Administratör", defaultAdminEmail, defaultAdminPassword)
	if err != nil {
		zap.L().Error("failed to ensure default admin user", zap.Error(err))
		return
	}
	if created {
		zap.L().Info("initialized default admin account", zap.String("email", defaultAdminEmail))
	}
}

// checkCategories seeds the product category taxonomy on first start.
func (a *Application) checkCategories() {
	if len(a.storages.Categories.GetAll()) > 0 {
		return
	}

	defaultCategories := []domain.ProductCategory{
		{Name: "Lyft", Icon: "arrow-up-circle", Color: "#2563EB"},
		{Name: "Rullstol", Icon: "accessibility", Color: "#16A34A"},
		{Name: "Säng", Icon: "bed", Color: "#9333EA"},
		{Name: "Hygien", Icon: "water", Color: "#0891B2"},
		{Name: "Övrigt", Icon: "cube", Color: "#64748B"},
	}

	for i := range defaultCategories {
		if _, err := a.storages.Categories.Save(&defaultCategories[i]); err != nil {
			zap.L().Error("failed to seed product category",
				zap.String("name", defaultCategories[i].Name), zap.Error(err))
			return
		}
		zap.L().Info("initialized product category", zap.String("name", defaultCategories[i].Name))
	}
}
