package adminapi

import (
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type customerExportRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	CompanyName string `csv:"company_name"`
	Email       string `csv:"email"`
	Phone       string `csv:"phone"`
	Address     string `csv:"address"`
	PostalCode  string `csv:"postal_code"`
	City        string `csv:"city"`
	IsArchived  bool   `csv:"is_archived"`
	CreatedAt   string `csv:"created_at"`
}

type serviceCaseExportRow struct {
	ID           string `csv:"id"`
	Title        string `csv:"title"`
	CustomerID   string `csv:"customer_id"`
	CustomerName string `csv:"customer_name"`
	ProductID    string `csv:"product_id"`
	Status       string `csv:"status"`
	Priority     string `csv:"priority"`
	CreatedAt    string `csv:"created_at"`
}

func registerExportRoutes() {
	webserver.ApiGET("/export/customers.csv", exportCustomers)
	webserver.ApiGET("/export/service-cases.csv", exportServiceCases)
}

func exportCustomers(c echo.Context) error {
	customers := getStorage(c).Customers.GetAllIncludingArchived()
	rows := make([]customerExportRow, 0, len(customers))
	for _, cu := range customers {
		rows = append(rows, customerExportRow{
			ID:          cu.ID,
			Name:        cu.Name,
			CompanyName: cu.CompanyName,
			Email:       cu.Email,
			Phone:       cu.Phone,
			Address:     cu.Address,
			PostalCode:  cu.PostalCode,
			City:        cu.City,
			IsArchived:  cu.IsArchived,
			CreatedAt:   cu.CreatedAt.Format(time.RFC3339),
		})
	}
	return writeCSV(c, "customers.csv", &rows)
}

func exportServiceCases(c echo.Context) error {
	cases := getStorage(c).Cases.GetAllWithCustomers()
	rows := make([]serviceCaseExportRow, 0, len(cases))
	for _, sc := range cases {
		row := serviceCaseExportRow{
			ID:         sc.ID,
			Title:      sc.Title,
			CustomerID: sc.CustomerID,
			ProductID:  sc.ProductID,
			Status:     sc.Status,
			Priority:   sc.Priority,
			CreatedAt:  sc.CreatedAt.Format(time.RFC3339),
		}
		if sc.Customer != nil {
			row.CustomerName = sc.Customer.Name
		}
		rows = append(rows, row)
	}
	return writeCSV(c, "service-cases.csv", &rows)
}

func writeCSV(c echo.Context, filename string, rows interface{}) error {
	data, err := gocsv.MarshalString(rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to encode CSV", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(data))
}
