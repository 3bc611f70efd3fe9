package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Claves de configuración conocidas (tabla app_settings).
const (
	SettingCompanyInfo     = "company_info"
	SettingInvoice         = "invoice_settings"
	SettingTheme           = "theme_settings"
	SettingNotifications   = "notification_settings"
)

// Setting es una fila cruda de configuración: clave + valor JSONB.
// Las vistas tipadas (CompanyInfo, InvoiceSettings) se obtienen
// deserializando Value sobre sus valores por defecto.
type Setting struct {
	ID          string
	Key         string
	Value       json.RawMessage
	Category    string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanyInfo son los datos de la empresa que aparecen en la factura.
// Todos los campos son opcionales y tienen fallback (DefaultCompanyInfo).
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

// InvoiceSettings controla numeración y formato de facturas.
// El generador de PDF solo las usa para presentación: nunca recalcula
// impuestos con TaxRate, confía en los montos guardados en la venta.
type InvoiceSettings struct {
	Prefix      string          `json:"prefix"`
	StartNumber int64           `json:"start_number"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Currency    string          `json:"currency"`
	DueDays     int             `json:"due_days"`
}

// ThemeSettings personalización visual del front; se guarda y sirve tal cual.
type ThemeSettings struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	DarkMode       bool   `json:"dark_mode"`
}

// NotificationSettings preferencias de avisos del tenant.
type NotificationSettings struct {
	LowStockAlerts     bool `json:"low_stock_alerts"`
	SaleNotifications  bool `json:"sale_notifications"`
	EmailNotifications bool `json:"email_notifications"`
}

// DefaultCompanyInfo valores por defecto cuando la clave no existe o está incompleta.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "Your Company",
		Address: "123 Business St",
		Phone:   "+1-555-0123",
		Email:   "info@company.com",
		Website: "www.company.com",
	}
}

// DefaultInvoiceSettings valores por defecto de numeración y formato.
func DefaultInvoiceSettings() InvoiceSettings {
	return InvoiceSettings{
		Prefix:      "INV",
		StartNumber: 1001,
		TaxRate:     decimal.NewFromFloat(0.0875),
		Currency:    "USD",
		DueDays:     30,
	}
}

// DefaultThemeSettings tema por defecto del front.
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#64748b",
	}
}

// DefaultNotificationSettings avisos por defecto.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		LowStockAlerts:    true,
		SaleNotifications: true,
	}
}
