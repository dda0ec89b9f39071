package main

import (
	"flag"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/mitchellh/go-homedir"
	"lnodelist/dao"
	"lnodelist/job"
	"lnodelist/logger"
	"lnodelist/server"
	"net/http"
	"os"
	"path/filepath"
)

func main() {
	var mode string // running mode
	var file string
	var redisUri string
	var mongoStr string
	var level string
	var ip string
	var port int
	flag.StringVar(&mode, "m", "run", "[run] a script file or [serve] the playground api.")
	flag.StringVar(&file, "f", "", "script file for run mode. relative paths are resolved from ~/.lnodelist/scripts when missing.")
	flag.StringVar(&redisUri, "r", "", "redis connection string for saved lists.")
	flag.StringVar(&mongoStr, "mg", "", "mongodb uri for saved lists.ignored when -r is given.")
	flag.StringVar(&level, "l", logger.INFO, "log level: DEBUG, INFO, WARN, ERROR.")
	flag.StringVar(&ip, "ip", "", "bind ip address.default is empty for all address.")
	flag.IntVar(&port, "p", 8080, "bind port")
	flag.Parse()
	logger.SetLevel(level)

	d := createDao(redisUri, mongoStr)
	if mode == "serve" {
		serve(d, ip, port)
		return
	}
	if file == "" {
		fmt.Println("script file is required, use -f.")
		os.Exit(2)
	}
	script, err := readScript(file)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err = job.Create(script, d).Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createDao(redisUri string, mongoStr string) dao.Dao {
	if redisUri != "" {
		return dao.CreateRedisDao(redisUri)
	}
	if mongoStr != "" {
		return dao.CreateMongoDao(mongoStr)
	}
	return dao.CreateLocalDao()
}

func serve(d dao.Dao, ip string, port int) {
	r := gin.Default()
	server.Start(r, d)
	r.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })

	err := r.Run(fmt.Sprintf("%s:%d", ip, port))
	if err != nil {
		fmt.Println(err)
		return
	}
}

func readScript(file string) (string, error) {
	buf, err := os.ReadFile(file)
	if err == nil || !os.IsNotExist(err) {
		return string(buf), err
	}
	dir, herr := homedir.Expand("~/.lnodelist/scripts")
	if herr != nil {
		return "", err
	}
	buf, err = os.ReadFile(filepath.Join(dir, file))
	return string(buf), err
}
