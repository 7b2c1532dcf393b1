package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Multipart framing overhead allowed on top of the upload ceiling.
const uploadOverhead = 1 << 20

// BodyLimit returns the request body cap for a given upload ceiling in MB.
// The cap sits above the ceiling so the upload handler's own size check,
// not the framework, decides the fate of a maximum-size image.
func BodyLimit(maxUploadMB int) int {
	return maxUploadMB*1024*1024 + uploadOverhead
}

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string, maxUploadMB int) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			BodyLimit: BodyLimit(maxUploadMB),
		}),
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
