package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NareeyaChenu/rfm-project/config"
	"github.com/NareeyaChenu/rfm-project/internal/global"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB.
// Dữ liệu nguồn (đơn hàng, member) nằm ở database data,
// kết quả gộp (profile, rfm_history, unify_runs) nằm ở database report.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	dataDB := client.Database(cfg.MongoDB_DBName_Data)
	reportDB := client.Database(cfg.MongoDB_DBName_Report)

	global.RegistryDatabase.Register("data", dataDB)
	global.RegistryDatabase.Register("report", reportDB)

	dataColNames := []string{
		global.MongoDB_ColNames.SalesOrders,
		global.MongoDB_ColNames.Members,
		global.MongoDB_ColNames.MemberTags,
		global.MongoDB_ColNames.MemberChannels,
	}
	reportColNames := []string{
		global.MongoDB_ColNames.CustomerProfiles,
		global.MongoDB_ColNames.RfmHistory,
		global.MongoDB_ColNames.UnifyRuns,
	}

	register := func(db *mongo.Database, names []string) error {
		for _, name := range names {
			registered, err := global.RegistryCollections.Register(name, db.Collection(name))
			if err != nil {
				logrus.Errorf("Failed to register collection %s: %v", name, err)
				return err
			}

			if registered {
				logrus.Infof("Collection %s registered successfully", name)
			} else {
				logrus.Errorf("Collection %s already registered", name)
			}
		}
		return nil
	}

	if err := register(dataDB, dataColNames); err != nil {
		return err
	}
	if err := register(reportDB, reportColNames); err != nil {
		return err
	}

	return nil
}
