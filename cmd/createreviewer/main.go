// createreviewer 创建一个审核人员帐号，用于首次部署时初始化后台。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/securities_account/configs"
	"github.com/securities_account/internal/repositories"
	"github.com/securities_account/internal/services"
	"github.com/securities_account/pkg/db"
	"github.com/securities_account/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "审核人员帐号")
	email := flag.String("email", "admin@example.com", "审核人员电子邮件")
	password := flag.String("password", "admin123", "审核人员密码")
	flag.Parse()

	cfg := configs.LoadConfig()
	log := logger.Init(cfg.Environment, cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	if err := db.InitDB(cfg.DBPath, log); err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}
	defer db.CloseDB(log)

	accounts := services.NewAccountService(repositories.NewGormUserRepository(db.GetDB()), log)
	user, err := accounts.CreateReviewer(context.Background(), *username, *email, *password)
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameExists) {
			fmt.Printf("使用者 %s 已存在\n", *username)
			return
		}
		fmt.Fprintf(os.Stderr, "建立審核人員失敗: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("成功建立審核人員帳號: %s (ID: %d)\n", user.Username, user.ID)
}
