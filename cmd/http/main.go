package main

import (
	"context"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/delivery/http/controllers"
	"hospicare-service/internal/app/delivery/http/middlewares"
	"hospicare-service/internal/app/delivery/http/routers"
	"hospicare-service/internal/app/drivers/database"
	"hospicare-service/internal/app/drivers/logger"
	"hospicare-service/internal/app/drivers/mailer"
	"hospicare-service/internal/app/drivers/messaging"
	"hospicare-service/internal/app/services/core/appointments"
	"hospicare-service/internal/app/services/core/attendances"
	medicinechecks "hospicare-service/internal/app/services/core/medicine_checks"
	"hospicare-service/internal/app/services/core/medicines"
	"hospicare-service/internal/app/services/core/patients"
	"hospicare-service/internal/app/services/core/queues"
	"hospicare-service/internal/app/services/core/records"
	"hospicare-service/internal/app/services/core/session"
	workschedules "hospicare-service/internal/app/services/core/work_schedules"
	"hospicare-service/internal/app/services/shared/locker"
	sharedmailer "hospicare-service/internal/app/services/shared/mailer"
	sharedredis "hospicare-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	stdLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		stdLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap, location); err != nil {
		stdLog.Fatalf("Bootstrap failed: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			stdLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		stdLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		stdLog.Printf("Error during shutdown: %v", err)
	}

	stdLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository)

	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerService, err := sharedmailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		return err
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	queueRepository := queues.NewQueueMongoRepository(bootstrap.MongoDB, dbName)
	recordRepository := records.NewRecordMongoRepository(bootstrap.MongoDB, dbName)
	medicineRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB, dbName)
	medicineCheckRepository := medicinechecks.NewMedicineCheckMongoRepository(bootstrap.MongoDB, dbName)
	attendanceRepository := attendances.NewAttendanceMongoRepository(bootstrap.MongoDB, dbName)
	scheduleRepository := workschedules.NewWorkScheduleMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		queueRepository,
		patientRepository,
		lockService,
		mailerService,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	queueUsecase := queues.NewQueueUsecase(queueRepository, bootstrap.Logger)
	recordUsecase := records.NewRecordUsecase(
		recordRepository,
		appointmentRepository,
		patientRepository,
		medicineRepository,
		bootstrap.Logger,
	)
	medicineUsecase := medicines.NewMedicineUsecase(medicineRepository, bootstrap.Logger)
	medicineCheckUsecase := medicinechecks.NewMedicineCheckUsecase(
		medicineCheckRepository,
		medicineRepository,
		sessionService,
		lockService,
		bootstrap.Logger,
	)
	attendanceUsecase := attendances.NewAttendanceUsecase(
		attendanceRepository,
		scheduleRepository,
		location,
		bootstrap.Logger,
	)
	workScheduleUsecase := workschedules.NewWorkScheduleUsecase(scheduleRepository, location, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)

	// Controllers
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	queueController := controllers.NewQueueController(bootstrap.Logger, queueUsecase)
	recordController := controllers.NewRecordController(bootstrap.Logger, recordUsecase)
	medicineController := controllers.NewMedicineController(bootstrap.Logger, medicineUsecase)
	medicineCheckController := controllers.NewMedicineCheckController(bootstrap.Logger, medicineCheckUsecase)
	attendanceController := controllers.NewAttendanceController(bootstrap.Logger, attendanceUsecase)
	workScheduleController := controllers.NewWorkScheduleController(bootstrap.Logger, workScheduleUsecase)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		appointmentController,
		queueController,
		recordController,
		medicineController,
		medicineCheckController,
		attendanceController,
		workScheduleController,
		patientController,
	)
	return nil
}
