// token emite un JWT firmado con JWT_SECRET para operar POST /api/v1/movements.
// No hay tabla de usuarios: el operador de planta genera tokens por estación o persona.
//
// Uso: go run ./cmd/token -sub bodega-central -role bodeguero [-exp 480]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/cafetal-api/pkg/config"
	"github.com/jhoicas/cafetal-api/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "", "sujeto del token (usuario o estación)")
	role := flag.String("role", jwt.RoleBodeguero, "rol: admin | bodeguero | lectura")
	exp := flag.Int("exp", 0, "expiración en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está configurado")
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
