package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"
	"github.com/NareeyaChenu/rfm-project/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(cfg.Address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo và chạy worker gộp khách hàng định kỳ (background)
	log := logger.GetAppLogger()
	unifyWorker, err := worker.NewUnifyRunWorker(global.MongoDB_ServerConfig)
	if err != nil {
		log.WithError(err).Error("Failed to create unify run worker, continuing without background worker")
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Chạy worker trong goroutine riêng với recover
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("🔗 [UNIFY_RUN] Worker goroutine panic")
				}
			}()

			log.Info("🔗 [UNIFY_RUN] Starting unify run worker...")
			unifyWorker.Start(ctx)
			log.Warn("🔗 [UNIFY_RUN] Worker đã dừng (có thể do context cancelled)")
		}()

		log.Info("🔗 [UNIFY_RUN] Unify run worker started successfully")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
