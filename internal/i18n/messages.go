package i18n

var spanish = map[string]string{
	FolderStructure:      "Estructura de carpetas para: %s",
	ProcessingStatus:     "Procesando: %d/%d entradas (%d%%)",
	ContentCopied:        "¡Contenido copiado al portapapeles!",
	NoContentToCopy:      "¡No hay contenido para copiar!",
	FileSaved:            "¡Archivo guardado correctamente!",
	SaveFileError:        "Error al guardar el archivo: %v",
	ProcessDirectoryErr:  "Error al procesar el directorio: %v",
	GenerationStopped:    "Generación detenida. No se produjo ninguna salida.",
	SelectDirectoryFirst: "¡Seleccione primero un directorio!",
	NoRecentDirectories:  "No hay directorios recientes.",
	RecentCleared:        "Directorios recientes borrados.",
	LanguageSet:          "Idioma establecido en %s",
	CurrentLanguage:      "Idioma actual: %s",
}

var chinese = map[string]string{
	FolderStructure:      "文件夹结构：%s",
	ProcessingStatus:     "处理中：%d/%d 项 (%d%%)",
	ContentCopied:        "内容已复制到剪贴板！",
	NoContentToCopy:      "没有可复制的内容！",
	FileSaved:            "文件保存成功！",
	SaveFileError:        "保存文件失败：%v",
	ProcessDirectoryErr:  "处理目录失败：%v",
	GenerationStopped:    "已停止生成，未产生任何输出。",
	SelectDirectoryFirst: "请先选择一个目录！",
	NoRecentDirectories:  "没有最近使用的目录。",
	RecentCleared:        "已清除最近使用的目录。",
	LanguageSet:          "语言已设置为 %s",
	CurrentLanguage:      "当前语言：%s",
}
