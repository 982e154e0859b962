package main

import (
	"context"
	"log"

	"SiteExer/internal/config"
	"SiteExer/internal/model"
	"SiteExer/internal/pkg"
	"SiteExer/internal/repository/mysql"
	"SiteExer/internal/repository/redis"
	"SiteExer/internal/router"
	"SiteExer/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	pkg.SetJWTSecrets(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatal(err)
	}
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatal(err)
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionVoter{},
		&model.AnswerVoter{},
		&model.ContentOutbox{},
	); err != nil {
		log.Fatal(err)
	}

	// Content events go to Kafka when brokers are configured, to the log
	// otherwise.
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(ctx)

	r := router.InitRouter(cfg)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
