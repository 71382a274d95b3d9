// Comando token emite um bearer token para chamar a API localmente
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/authenticating"
)

func main() {
	user := pflag.String("user", "admin", "Nome do usuário gravado no token")
	role := pflag.Int("role", domain.RoleAdmin, "Perfil: 1 admin, 2 supervisor, 3 caixa")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(*user, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
