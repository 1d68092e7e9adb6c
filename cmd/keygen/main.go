// Command keygen mints a product key proof for an (email, role) pair.
// It runs with the server's environment, so only operators holding
// AUTH_PRODUCT_KEY_SECRET can use it; this is how the first ADMIN account
// gets its proof before the /auth/key endpoint has any admin to guard it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/config"
	"github.com/SamDTech/realtor-api/internal/domain"
)

func main() {
	email := flag.String("email", "", "email the proof is bound to")
	roleArg := flag.String("role", string(domain.UserRoleRealtor), "role the proof authorizes (REALTOR or ADMIN)")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}
	role, ok := domain.ParseUserRole(*roleArg)
	if !ok || role == domain.UserRoleBuyer {
		log.Fatalf("role must be REALTOR or ADMIN, got %q", *roleArg)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	codec := auth.NewProductKeyCodec(cfg.Auth.ProductKeySecret, cfg.Auth.BcryptCost)
	proof, err := codec.Issue(*email, role)
	if err != nil {
		log.Fatalf("failed to derive product key: %v", err)
	}

	fmt.Println(proof)
}
