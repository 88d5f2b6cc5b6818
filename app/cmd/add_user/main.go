package main

import (
	"fmt"
	"os"

	"github.com/trahulprabhu38/major-project-sub003/app/config"
	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("Usage: add_user <first_name> <last_name> <email> <password>")
		return
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		FirstName: os.Args[1],
		LastName:  os.Args[2],
		Email:     os.Args[3],
		Password:  os.Args[4],
	}

	if err := database.CreateFacultyUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
