// issuetoken prints a bearer token for a chat user id, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/limbo/dayflow/pkg/config"
	jwtservice "github.com/limbo/dayflow/pkg/jwt_service"
)

func main() {
	uid := flag.Int64("uid", 0, "chat user id")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()
	if *uid == 0 {
		log.Fatal("-uid is required")
	}
	secret := config.New().GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	token, err := jwtservice.New(secret, *ttl).GenerateToken(*uid)
	if err != nil {
		log.Fatal("signing token error: " + err.Error())
	}
	fmt.Println(token)
}
