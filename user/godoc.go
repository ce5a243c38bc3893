// Package user provides small helpers around user input and identity:
// email address validation, client IP lookup from an HTTP request and
// bcrypt password hashing and verification.
//
// Example usage:
//
//	package main
//
//	import (
//		"log"
//		"net/http"
//
//		"github.com/paccolamano/helpers/user"
//	)
//
//	func signup(w http.ResponseWriter, r *http.Request) {
//		email := r.FormValue("email")
//		if !user.IsEmail(email) {
//			http.Error(w, "invalid email", http.StatusBadRequest)
//			return
//		}
//
//		hash, err := user.HashPassword(r.FormValue("password"))
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//
//		log.Printf("new user %s from %s (%d bytes hash)", email, user.IP(r), len(hash))
//	}
package user
