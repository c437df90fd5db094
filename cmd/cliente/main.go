package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"catalogo-productos/cliente"
	"catalogo-productos/utils"
)

// consoleAlerter prints alerts to the terminal
type consoleAlerter struct{}

func (consoleAlerter) Alert(title, message string) {
	fmt.Printf("[%s] %s\n", title, message)
}

// buildPhotoSource picks the capture device from CAMERA:
// "chrome" screenshots CAMERA_URL, "drive" pulls from DRIVE_FOLDER_ID.
// Anything else leaves the client without a camera.
func buildPhotoSource(ctx context.Context) cliente.PhotoSource {
	switch os.Getenv("CAMERA") {
	case "chrome":
		captureURL := os.Getenv("CAMERA_URL")
		if captureURL == "" {
			log.Printf("Warning: CAMERA=chrome but CAMERA_URL is not set")
			return nil
		}
		return cliente.NewChromeCamera(captureURL)
	case "drive":
		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		folderID := os.Getenv("DRIVE_FOLDER_ID")
		if credentialsPath == "" || folderID == "" {
			log.Printf("Warning: CAMERA=drive requires GOOGLE_APPLICATION_CREDENTIALS and DRIVE_FOLDER_ID")
			return nil
		}
		source, err := cliente.NewDrivePhotoSource(ctx, credentialsPath, folderID)
		if err != nil {
			log.Printf("Warning: could not create drive photo source: %v", err)
			return nil
		}
		return source
	}
	return nil
}

func printState(c *cliente.Controller) {
	switch c.View() {
	case cliente.ViewList:
		fmt.Println("\n== Lista de Productos ==")
		if len(c.Products()) == 0 {
			fmt.Println("No hay productos para mostrar.")
		}
		for _, p := range c.Products() {
			fmt.Printf("  %d. %s - %.2f (%s)\n", p.ID, p.Nombre, p.Precio, p.Estado)
		}
		fmt.Println("Comandos: actualizar | agregar | ver <id> | salir")
	case cliente.ViewForm:
		d := c.Draft()
		foto := d.URLFotografia
		if utils.IsDataURI(foto) {
			foto = fmt.Sprintf("(foto capturada, %d bytes)", len(foto))
		}
		fmt.Println("\n== Crear Producto ==")
		fmt.Printf("  nombre: %s\n  descripcion: %s\n  precio: %s\n  estado: %s\n  categoria: %s\n  foto: %s\n",
			d.Nombre, d.Descripcion, d.Precio, d.Estado, d.Categoria, foto)
		fmt.Println("Comandos: <campo> <valor> | foto | guardar | cancelar")
	case cliente.ViewDetails:
		p := c.Selected()
		fmt.Println("\n== Detalle del Producto ==")
		fmt.Printf("  Nombre: %s\n  Descripción: %s\n  Precio: %.2f\n  Estado: %s\n  Categoría: %s\n",
			p.Nombre, p.Descripcion, p.Precio, p.Estado, p.Categoria)
		fmt.Println("Comandos: eliminar | volver")
	}
}

func main() {
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3000"
	}

	ctx := context.Background()
	controller := cliente.NewController(
		cliente.NewAPIClient(apiURL),
		buildPhotoSource(ctx),
		consoleAlerter{},
	)

	controller.Refresh(ctx)
	printState(controller)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "salir", "exit":
			return
		case "actualizar":
			controller.Refresh(ctx)
		case "agregar":
			controller.ShowForm()
		case "ver":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Uso: ver <id>")
				break
			}
			controller.SelectProduct(id)
		case "nombre", "descripcion", "precio", "estado", "categoria":
			d := controller.Draft()
			if d == nil {
				fmt.Println("Comando disponible solo en el formulario.")
				break
			}
			switch cmd {
			case "nombre":
				d.Nombre = arg
			case "descripcion":
				d.Descripcion = arg
			case "precio":
				d.Precio = arg
			case "estado":
				d.Estado = arg
			case "categoria":
				d.Categoria = arg
			}
		case "foto":
			controller.TakePhoto(ctx)
		case "guardar":
			controller.SubmitForm(ctx)
		case "cancelar":
			controller.CancelForm()
		case "eliminar":
			controller.DeleteSelected(ctx)
		case "volver":
			controller.Back()
		case "":
		default:
			fmt.Printf("Comando desconocido: %s\n", cmd)
		}

		printState(controller)
	}
}
