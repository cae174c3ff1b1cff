package handler

import (
	"encoding/json"
	"net/http"
	"os"
)

// RootHandler serve o index.html do painel quando presente no diretório
// de trabalho; sem ele, responde um corpo simples de liveness
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat("index.html"); err == nil {
			http.ServeFile(w, r, "index.html")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "API no ar (index.html não encontrado)",
		})
	})
}

// AssetsHandler serve os arquivos estáticos do painel. O diretório se
// chama "assests" mesmo, herdado do frontend.
func AssetsHandler() http.Handler {
	return http.StripPrefix("/assests/", http.FileServer(http.Dir("assests")))
}
