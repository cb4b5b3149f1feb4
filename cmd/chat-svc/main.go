package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "socialfeed/api/v1/chat"
	"socialfeed/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app, cleanup, err := di.InitializeChatService()
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}
	defer cleanup()

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(loggingUnaryInterceptor(app.Logger)),
		grpc.StreamInterceptor(loggingStreamInterceptor(app.Logger)),
	)
	pb.RegisterChatServer(grpcServer, app.Handler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+app.Config.Server.ChatServicePort)
	if err != nil {
		log.Fatalf("Failed to listen on port %s: %v", app.Config.Server.ChatServicePort, err)
	}

	go func() {
		app.Logger.Info("chat service running", "port", app.Config.Server.ChatServicePort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down chat service")
	grpcServer.GracefulStop()
	app.Logger.Info("chat service stopped")
}

func loggingUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			logger.Error("rpc failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
		} else {
			logger.Info("rpc completed", "method", info.FullMethod, "duration", time.Since(start))
		}
		return resp, err
	}
}

func loggingStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

		logger.Info("stream started", "method", info.FullMethod)
		err := handler(srv, stream)

		if err != nil {
			logger.Error("stream ended with error", "method", info.FullMethod, "error", err)
		} else {
			logger.Info("stream completed", "method", info.FullMethod)
		}
		return err
	}
}
