// seed puebla la base de datos con los datos mínimos para arrancar:
// las claves de configuración por defecto (app_settings) y un usuario
// administrador inicial.
//
// Uso: go run ./cmd/seed [email] [password]
// Por defecto crea admin@smartstock.local con la contraseña "changeme123".
// Los inserts usan ON CONFLICT DO NOTHING: correrlo dos veces es inocuo.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/infrastructure/postgres"
	"github.com/smartstock/pos-api/pkg/config"
)

func main() {
	email := "admin@smartstock.local"
	password := "changeme123"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Configuración por defecto: cada clave con su valor inicial y categoría.
	defaults := []struct {
		key      string
		category string
		desc     string
		value    any
	}{
		{entity.SettingCompanyInfo, "company", "Datos de la empresa para la factura", entity.DefaultCompanyInfo()},
		{entity.SettingInvoice, "billing", "Numeración y formato de facturas", entity.DefaultInvoiceSettings()},
		{entity.SettingTheme, "appearance", "Personalización visual", entity.DefaultThemeSettings()},
		{entity.SettingNotifications, "notifications", "Preferencias de avisos", entity.DefaultNotificationSettings()},
	}

	for _, d := range defaults {
		raw, err := json.Marshal(d.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "serializar %s: %v\n", d.key, err)
			os.Exit(1)
		}
		tag, err := pool.Exec(ctx,
			`INSERT INTO app_settings (id, setting_key, setting_value, category, description, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $6)
			 ON CONFLICT (setting_key) DO NOTHING`,
			uuid.New().String(), d.key, raw, d.category, d.desc, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar %s: %v\n", d.key, err)
			os.Exit(1)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("configuración %s creada\n", d.key)
		} else {
			fmt.Printf("configuración %s ya existe, sin cambios\n", d.key)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	tag, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, full_name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), email, "Administrador", entity.RoleAdmin, string(hash), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar admin: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() > 0 {
		fmt.Printf("usuario admin %s creado\n", email)
	} else {
		fmt.Printf("usuario %s ya existe, sin cambios\n", email)
	}
}
